package vdom

// AttrKind identifies an attribute kind from the HTML attribute table.
type AttrKind uint8

// Attribute kinds. AttrInvalid is the zero value.
const (
	AttrInvalid AttrKind = iota
	AttrStyle
	AttrAccept
	AttrAcceptCharset
	AttrAccesskey
	AttrAction
	AttrAlt
	AttrAsync
	AttrAutocomplete
	AttrAutofocus
	AttrAutoplay
	AttrChallenge
	AttrCharset
	AttrChecked
	AttrCite
	AttrClass
	AttrCols
	AttrColspan
	AttrContent
	AttrContenteditable
	AttrContextmenu
	AttrControls
	AttrCoords
	AttrData
	AttrDatetime
	AttrDefault
	AttrDefer
	AttrDir
	AttrDirname
	AttrDisabled
	AttrDownload
	AttrDraggable
	AttrDropzone
	AttrEnctype
	AttrFor
	AttrForm
	AttrFormaction
	AttrHeaders
	AttrHeight
	AttrHidden
	AttrHigh
	AttrHref
	AttrHreflang
	AttrHttpEquiv
	AttrId
	AttrIsmap
	AttrKeytype
	AttrTrackKind
	AttrLabel
	AttrLang
	AttrList
	AttrLoop
	AttrLow
	AttrMax
	AttrMaxlength
	AttrMedia
	AttrMethod
	AttrMin
	AttrMultiple
	AttrMuted
	AttrName
	AttrNovalidate
	AttrOnabort
	AttrOnafterprint
	AttrOnbeforeprint
	AttrOnbeforeunload
	AttrOnblur
	AttrOncanplay
	AttrOncanplaythrough
	AttrOnchange
	AttrOnclick
	AttrOncontextmenu
	AttrOncopy
	AttrOncuechange
	AttrOncut
	AttrOndblclick
	AttrOndrag
	AttrOndragend
	AttrOndragenter
	AttrOndragleave
	AttrOndragover
	AttrOndragstart
	AttrOndrop
	AttrOndurationchange
	AttrOnemptied
	AttrOnended
	AttrOnerror
	AttrOnfocus
	AttrOnhashchange
	AttrOninput
	AttrOninvalid
	AttrOnkeydown
	AttrOnkeypress
	AttrOnkeyup
	AttrOnload
	AttrOnloadeddata
	AttrOnloadedmetadata
	AttrOnloadstart
	AttrOnmousedown
	AttrOnmousemove
	AttrOnmouseout
	AttrOnmouseover
	AttrOnmouseup
	AttrOnmousewheel
	AttrOnoffline
	AttrOnonline
	AttrOnpagehide
	AttrOnpageshow
	AttrOnpaste
	AttrOnpause
	AttrOnplay
	AttrOnplaying
	AttrOnpopstate
	AttrOnprogress
	AttrOnratechange
	AttrOnreset
	AttrOnresize
	AttrOnscroll
	AttrOnsearch
	AttrOnseeked
	AttrOnseeking
	AttrOnselect
	AttrOnshow
	AttrOnstalled
	AttrOnstorage
	AttrOnsubmit
	AttrOnsuspend
	AttrOntimeupdate
	AttrOntoggle
	AttrOnunload
	AttrOnvolumechange
	AttrOnwaiting
	AttrOnwheel
	AttrOpen
	AttrOptimum
	AttrPattern
	AttrPlaceholder
	AttrPoster
	AttrPreload
	AttrReadonly
	AttrRel
	AttrRequired
	AttrReversed
	AttrRows
	AttrRowspan
	AttrSandbox
	AttrScope
	AttrScoped
	AttrSelected
	AttrShape
	AttrSize
	AttrSizes
	AttrSpan
	AttrSpellcheck
	AttrSrc
	AttrSrcdoc
	AttrSrclang
	AttrSrcset
	AttrStart
	AttrStep
	AttrTabindex
	AttrTarget
	AttrTitle
	AttrTranslate
	AttrType
	AttrUsemap
	AttrValue
	AttrWidth
	AttrWrap

	attrKindCount
)

type attrKindInfo struct {
	name        string
	belongsTo   []Kind
	description string
}

var attrKindTable = [attrKindCount]attrKindInfo{
	AttrStyle:            {"style", nil, "Specifies an inline CSS style for an element"},
	AttrAccept:           {"accept", []Kind{KindInput}, "Specifies the types of files that the server accepts (only for type=\"file\")"},
	AttrAcceptCharset:    {"accept-charset", []Kind{KindForm}, "Specifies the character encodings that are to be used for the form submission"},
	AttrAccesskey:        {"accesskey", nil, "Specifies a shortcut key to activate/focus an element"},
	AttrAction:           {"action", []Kind{KindForm}, "Specifies where to send the form-data when a form is submitted"},
	AttrAlt:              {"alt", []Kind{KindArea, KindImg, KindInput}, "Specifies an alternate text when the original element fails to display"},
	AttrAsync:            {"async", []Kind{KindScript}, "Specifies that the script is executed asynchronously (only for external scripts)"},
	AttrAutocomplete:     {"autocomplete", []Kind{KindForm, KindInput}, "Specifies whether the <form> or the <input> element should have autocomplete enabled"},
	AttrAutofocus:        {"autofocus", []Kind{KindButton, KindInput, KindKeygen, KindSelect, KindTextarea}, "Specifies that the element should automatically get focus when the page loads"},
	AttrAutoplay:         {"autoplay", []Kind{KindAudio, KindVideo}, "Specifies that the audio/video will start playing as soon as it is ready"},
	AttrChallenge:        {"challenge", []Kind{KindKeygen}, "Specifies that the value of the <keygen> element should be challenged when submitted"},
	AttrCharset:          {"charset", []Kind{KindMeta, KindScript}, "Specifies the character encoding"},
	AttrChecked:          {"checked", []Kind{KindInput}, "Specifies that an <input> element should be pre-selected when the page loads (for type=\"checkbox\" or type=\"radio\")"},
	AttrCite:             {"cite", []Kind{KindBlockquote, KindDel, KindIns, KindQ}, "Specifies a URL which explains the quote/deleted/inserted text"},
	AttrClass:            {"class", nil, "Specifies one or more classnames for an element (refers to a class in a style sheet)"},
	AttrCols:             {"cols", []Kind{KindTextarea}, "Specifies the visible width of a text area"},
	AttrColspan:          {"colspan", []Kind{KindTd, KindTh}, "Specifies the number of columns a table cell should span"},
	AttrContent:          {"content", []Kind{KindMeta}, "Gives the value associated with the http-equiv or name attribute"},
	AttrContenteditable:  {"contenteditable", nil, "Specifies whether the content of an element is editable or not"},
	AttrContextmenu:      {"contextmenu", nil, "Specifies a context menu for an element. The context menu appears when a user right-clicks on the element"},
	AttrControls:         {"controls", []Kind{KindAudio, KindVideo}, "Specifies that audio/video controls should be displayed (such as a play/pause button etc)"},
	AttrCoords:           {"coords", []Kind{KindArea}, "Specifies the coordinates of the area"},
	AttrData:             {"data", []Kind{KindObject}, "Specifies the URL of the resource to be used by the object"},
	AttrDatetime:         {"datetime", []Kind{KindDel, KindIns, KindTime}, "Specifies the date and time"},
	AttrDefault:          {"default", []Kind{KindTrack}, "Specifies that the track is to be enabled if the user's preferences do not indicate that another track would be more appropriate"},
	AttrDefer:            {"defer", []Kind{KindScript}, "Specifies that the script is executed when the page has finished parsing (only for external scripts)"},
	AttrDir:              {"dir", nil, "Specifies the text direction for the content in an element"},
	AttrDirname:          {"dirname", []Kind{KindInput, KindTextarea}, "Specifies that the text direction will be submitted"},
	AttrDisabled:         {"disabled", []Kind{KindButton, KindFieldset, KindInput, KindKeygen, KindOptgroup, KindOption, KindSelect, KindTextarea}, "Specifies that the specified element/group of elements should be disabled"},
	AttrDownload:         {"download", []Kind{KindA, KindArea}, "Specifies that the target will be downloaded when a user clicks on the hyperlink"},
	AttrDraggable:        {"draggable", nil, "Specifies whether an element is draggable or not"},
	AttrDropzone:         {"dropzone", nil, "Specifies whether the dragged data is copied, moved, or linked, when dropped"},
	AttrEnctype:          {"enctype", []Kind{KindForm}, "Specifies how the form-data should be encoded when submitting it to the server (only for method=\"post\")"},
	AttrFor:              {"for", []Kind{KindLabel, KindOutput}, "Specifies which form element(s) a label/calculation is bound to"},
	AttrForm:             {"form", []Kind{KindButton, KindFieldset, KindInput, KindKeygen, KindLabel, KindMeter, KindObject, KindOutput, KindSelect, KindTextarea}, "Specifies the name of the form the element belongs to"},
	AttrFormaction:       {"formaction", []Kind{KindButton, KindInput}, "Specifies where to send the form-data when a form is submitted. Only for type=\"submit"},
	AttrHeaders:          {"headers", []Kind{KindTd, KindTh}, "Specifies one or more headers cells a cell is related to"},
	AttrHeight:           {"height", []Kind{KindCanvas, KindEmbed, KindIframe, KindImg, KindInput, KindObject, KindVideo}, "Specifies the height of the element"},
	AttrHidden:           {"hidden", nil, "Specifies that an element is not yet, or is no longer, relevant"},
	AttrHigh:             {"high", []Kind{KindMeter}, "Specifies the range that is considered to be a high value"},
	AttrHref:             {"href", []Kind{KindA, KindArea, KindBase, KindLink}, "Specifies the URL of the page the link goes to"},
	AttrHreflang:         {"hreflang", []Kind{KindA, KindArea, KindLink}, "Specifies the language of the linked document"},
	AttrHttpEquiv:        {"http-equiv", []Kind{KindMeta}, "Provides an HTTP header for the information/value of the content attribute"},
	AttrId:               {"id", nil, "Specifies a unique id for an element"},
	AttrIsmap:            {"ismap", []Kind{KindImg}, "Specifies an image as a server-side image-map"},
	AttrKeytype:          {"keytype", []Kind{KindKeygen}, "Specifies the security algorithm of the key"},
	AttrTrackKind:        {"kind", []Kind{KindTrack}, "Specifies the kind of text track"},
	AttrLabel:            {"label", []Kind{KindTrack, KindOption, KindOptgroup}, "Specifies the title of the text track"},
	AttrLang:             {"lang", nil, "Specifies the language of the element's content"},
	AttrList:             {"list", []Kind{KindInput}, "Refers to a <datalist> element that contains pre-defined options for an <input> element"},
	AttrLoop:             {"loop", []Kind{KindAudio, KindVideo}, "Specifies that the audio/video will start over again, every time it is finished"},
	AttrLow:              {"low", []Kind{KindMeter}, "Specifies the range that is considered to be a low value"},
	AttrMax:              {"max", []Kind{KindInput, KindMeter, KindProgress}, "Specifies the maximum value"},
	AttrMaxlength:        {"maxlength", []Kind{KindInput, KindTextarea}, "Specifies the maximum number of characters allowed in an element"},
	AttrMedia:            {"media", []Kind{KindA, KindArea, KindLink, KindSource, KindStyle}, "Specifies what media/device the linked document is optimized for"},
	AttrMethod:           {"method", []Kind{KindForm}, "Specifies the HTTP method to use when sending form-data"},
	AttrMin:              {"min", []Kind{KindInput, KindMeter}, "Specifies a minimum value"},
	AttrMultiple:         {"multiple", []Kind{KindInput, KindSelect}, "Specifies that a user can enter more than one value"},
	AttrMuted:            {"muted", []Kind{KindVideo, KindAudio}, "Specifies that the audio output of the video should be muted"},
	AttrName:             {"name", []Kind{KindButton, KindFieldset, KindForm, KindIframe, KindInput, KindKeygen, KindMap, KindMeta, KindObject, KindOutput, KindParam, KindSelect, KindTextarea}, "Specifies the name of the element"},
	AttrNovalidate:       {"novalidate", []Kind{KindForm}, "Specifies that the form should not be validated when submitted"},
	AttrOnabort:          {"onabort", []Kind{KindAudio, KindEmbed, KindImg, KindObject, KindVideo}, "Script to be run on abort"},
	AttrOnafterprint:     {"onafterprint", []Kind{KindBody}, "Script to be run after the document is printed"},
	AttrOnbeforeprint:    {"onbeforeprint", []Kind{KindBody}, "Script to be run before the document is printed"},
	AttrOnbeforeunload:   {"onbeforeunload", []Kind{KindBody}, "Script to be run when the document is about to be unloaded"},
	AttrOnblur:           {"onblur", nil, "Script to be run when the element loses focus"},
	AttrOncanplay:        {"oncanplay", []Kind{KindAudio, KindEmbed, KindObject, KindVideo}, "Script to be run when a file is ready to start playing (when it has buffered enough to begin)"},
	AttrOncanplaythrough: {"oncanplaythrough", []Kind{KindAudio, KindVideo}, "Script to be run when a file can be played all the way to the end without pausing for buffering"},
	AttrOnchange:         {"onchange", nil, "Script to be run when the value of the element is changed"},
	AttrOnclick:          {"onclick", nil, "Script to be run when the element is being clicked"},
	AttrOncontextmenu:    {"oncontextmenu", nil, "Script to be run when a context menu is triggered"},
	AttrOncopy:           {"oncopy", nil, "Script to be run when the content of the element is being copied"},
	AttrOncuechange:      {"oncuechange", []Kind{KindTrack}, "Script to be run when the cue changes in a <track] element"},
	AttrOncut:            {"oncut", nil, "Script to be run when the content of the element is being cut"},
	AttrOndblclick:       {"ondblclick", nil, "Script to be run when the element is being double-clicked"},
	AttrOndrag:           {"ondrag", nil, "Script to be run when the element is being dragged"},
	AttrOndragend:        {"ondragend", nil, "Script to be run at the end of a drag operation"},
	AttrOndragenter:      {"ondragenter", nil, "Script to be run when an element has been dragged to a valid drop target"},
	AttrOndragleave:      {"ondragleave", nil, "Script to be run when an element leaves a valid drop target"},
	AttrOndragover:       {"ondragover", nil, "Script to be run when an element is being dragged over a valid drop target"},
	AttrOndragstart:      {"ondragstart", nil, "Script to be run at the start of a drag operation"},
	AttrOndrop:           {"ondrop", nil, "Script to be run when dragged element is being dropped"},
	AttrOndurationchange: {"ondurationchange", []Kind{KindAudio, KindVideo}, "Script to be run when the length of the media changes"},
	AttrOnemptied:        {"onemptied", []Kind{KindAudio, KindVideo}, "Script to be run when something bad happens and the file is suddenly unavailable (like unexpectedly disconnects)"},
	AttrOnended:          {"onended", []Kind{KindAudio, KindVideo}, "Script to be run when the media has reach the end (a useful event for messages like \"thanks for listening\")"},
	AttrOnerror:          {"onerror", []Kind{KindAudio, KindBody, KindEmbed, KindImg, KindObject, KindScript, KindStyle, KindVideo}, "Script to be run when an error occurs"},
	AttrOnfocus:          {"onfocus", nil, "Script to be run when the element gets focus"},
	AttrOnhashchange:     {"onhashchange", []Kind{KindBody}, "Script to be run when there has been changes to the anchor part of the a URL"},
	AttrOninput:          {"oninput", nil, "Script to be run when the element gets user input"},
	AttrOninvalid:        {"oninvalid", nil, "Script to be run when the element is invalid"},
	AttrOnkeydown:        {"onkeydown", nil, "Script to be run when a user is pressing a key"},
	AttrOnkeypress:       {"onkeypress", nil, "Script to be run when a user presses a key"},
	AttrOnkeyup:          {"onkeyup", nil, "Script to be run when a user releases a key"},
	AttrOnload:           {"onload", []Kind{KindBody, KindIframe, KindImg, KindInput, KindLink, KindScript, KindStyle}, "Script to be run when the element is finished loading"},
	AttrOnloadeddata:     {"onloadeddata", []Kind{KindAudio, KindVideo}, "Script to be run when media data is loaded"},
	AttrOnloadedmetadata: {"onloadedmetadata", []Kind{KindAudio, KindVideo}, "Script to be run when meta data (like dimensions and duration) are loaded"},
	AttrOnloadstart:      {"onloadstart", []Kind{KindAudio, KindVideo}, "Script to be run just as the file begins to load before anything is actually loaded"},
	AttrOnmousedown:      {"onmousedown", nil, "Script to be run when a mouse button is pressed down on an element"},
	AttrOnmousemove:      {"onmousemove", nil, "Script to be run as long as the mouse pointer is moving over an element"},
	AttrOnmouseout:       {"onmouseout", nil, "Script to be run when a mouse pointer moves out of an element"},
	AttrOnmouseover:      {"onmouseover", nil, "Script to be run when a mouse pointer moves over an element"},
	AttrOnmouseup:        {"onmouseup", nil, "Script to be run when a mouse button is released over an element"},
	AttrOnmousewheel:     {"onmousewheel", nil, "Script to be run when a mouse wheel is being scrolled over an element"},
	AttrOnoffline:        {"onoffline", []Kind{KindBody}, "Script to be run when the browser starts to work offline"},
	AttrOnonline:         {"ononline", []Kind{KindBody}, "Script to be run when the browser starts to work online"},
	AttrOnpagehide:       {"onpagehide", []Kind{KindBody}, "Script to be run when a user navigates away from a page"},
	AttrOnpageshow:       {"onpageshow", []Kind{KindBody}, "Script to be run when a user navigates to a page"},
	AttrOnpaste:          {"onpaste", nil, "Script to be run when the user pastes some content in an element"},
	AttrOnpause:          {"onpause", []Kind{KindAudio, KindVideo}, "Script to be run when the media is paused either by the user or programmatically"},
	AttrOnplay:           {"onplay", []Kind{KindAudio, KindVideo}, "Script to be run when the media is ready to start playing"},
	AttrOnplaying:        {"onplaying", []Kind{KindAudio, KindVideo}, "Script to be run when the media actually has started playing."},
	AttrOnpopstate:       {"onpopstate", []Kind{KindBody}, "Script to be run when the window's history changes."},
	AttrOnprogress:       {"onprogress", []Kind{KindAudio, KindVideo}, "Script to be run when the browser is in the process of getting the media data"},
	AttrOnratechange:     {"onratechange", []Kind{KindAudio, KindVideo}, "Script to be run each time the playback rate changes (like when a user switches to a slow motion or fast forward mode)."},
	AttrOnreset:          {"onreset", []Kind{KindForm}, "Script to be run when a reset button in a form is clicked."},
	AttrOnresize:         {"onresize", []Kind{KindBody}, "Script to be run when the browser window is being resized."},
	AttrOnscroll:         {"onscroll", nil, "Script to be run when an element's scrollbar is being scrolled"},
	AttrOnsearch:         {"onsearch", []Kind{KindInput}, "Script to be run when the user writes something in a search field (for <input=\"search\">)"},
	AttrOnseeked:         {"onseeked", []Kind{KindAudio, KindVideo}, "Script to be run when the seeking attribute is set to false indicating that seeking has ended"},
	AttrOnseeking:        {"onseeking", []Kind{KindAudio, KindVideo}, "Script to be run when the seeking attribute is set to true indicating that seeking is active"},
	AttrOnselect:         {"onselect", nil, "Script to be run when the element gets selected"},
	AttrOnshow:           {"onshow", []Kind{KindMenu}, "Script to be run when a <menu] element is shown as a context menu"},
	AttrOnstalled:        {"onstalled", []Kind{KindAudio, KindVideo}, "Script to be run when the browser is unable to fetch the media data for whatever reason"},
	AttrOnstorage:        {"onstorage", []Kind{KindBody}, "Script to be run when a Web Storage area is updated"},
	AttrOnsubmit:         {"onsubmit", []Kind{KindForm}, "Script to be run when a form is submitted"},
	AttrOnsuspend:        {"onsuspend", []Kind{KindAudio, KindVideo}, "Script to be run when fetching the media data is stopped before it is completely loaded for whatever reason"},
	AttrOntimeupdate:     {"ontimeupdate", []Kind{KindAudio, KindVideo}, "Script to be run when the playing position has changed (like when the user fast forwards to a different point in the media)"},
	AttrOntoggle:         {"ontoggle", []Kind{KindDetails}, "Script to be run when the user opens or closes the <details] element"},
	AttrOnunload:         {"onunload", []Kind{KindBody}, "Script to be run when a page has unloaded (or the browser window has been closed)"},
	AttrOnvolumechange:   {"onvolumechange", []Kind{KindAudio, KindVideo}, "Script to be run each time the volume of a video/audio has been changed"},
	AttrOnwaiting:        {"onwaiting", []Kind{KindAudio, KindVideo}, "Script to be run when the media has paused but is expected to resume (like when the media pauses to buffer more data)"},
	AttrOnwheel:          {"onwheel", nil, "Script to be run when the mouse wheel rolls up or down over an element"},
	AttrOpen:             {"open", []Kind{KindDetails}, "Specifies that the details should be visible (open) to the user"},
	AttrOptimum:          {"optimum", []Kind{KindMeter}, "Specifies what value is the optimal value for the gauge"},
	AttrPattern:          {"pattern", []Kind{KindInput}, "Specifies a regular expression that an <input] element's value is checked against"},
	AttrPlaceholder:      {"placeholder", []Kind{KindInput, KindTextarea}, "Specifies a short hint that describes the expected value of the element"},
	AttrPoster:           {"poster", []Kind{KindVideo}, "Specifies an image to be shown while the video is downloading, or until the user hits the play button"},
	AttrPreload:          {"preload", []Kind{KindAudio, KindVideo}, "Specifies if and how the author thinks the audio/video should be loaded when the page loads"},
	AttrReadonly:         {"readonly", []Kind{KindInput, KindTextarea}, "Specifies that the element is read-only"},
	AttrRel:              {"rel", []Kind{KindA, KindArea, KindLink}, "Specifies the relationship between the current document and the linked document"},
	AttrRequired:         {"required", []Kind{KindInput, KindSelect, KindTextarea}, "Specifies that the element must be filled out before submitting the form"},
	AttrReversed:         {"reversed", []Kind{KindOl}, "Specifies that the list order should be descending (9,8,7...)"},
	AttrRows:             {"rows", []Kind{KindTextarea}, "Specifies the visible number of lines in a text area"},
	AttrRowspan:          {"rowspan", []Kind{KindTd, KindTh}, "Specifies the number of rows a table cell should span"},
	AttrSandbox:          {"sandbox", []Kind{KindIframe}, "Enables an extra set of restrictions for the content in an iframe]"},
	AttrScope:            {"scope", []Kind{KindTh}, "Specifies whether a header cell is a header for a column, row, or group of columns or rows"},
	AttrScoped:           {"scoped", []Kind{KindStyle}, "Specifies that the styles only apply to this element's parent element and that element's child elements"},
	AttrSelected:         {"selected", []Kind{KindOption}, "Specifies that an option should be pre-selected when the page loads"},
	AttrShape:            {"shape", []Kind{KindArea}, "Specifies the shape of the area"},
	AttrSize:             {"size", []Kind{KindInput, KindSelect}, "Specifies the width, in characters (for <input>) or specifies the number of visible options (for <select>)"},
	AttrSizes:            {"sizes", []Kind{KindImg, KindLink, KindSource}, "Specifies the size of the linked resource"},
	AttrSpan:             {"span", []Kind{KindCol, KindColgroup}, "Specifies the number of columns to span"},
	AttrSpellcheck:       {"spellcheck", nil, "Specifies whether the element is to have its spelling and grammar checked or not"},
	AttrSrc:              {"src", []Kind{KindAudio, KindEmbed, KindIframe, KindImg, KindInput, KindScript, KindSource, KindTrack, KindVideo}, "Specifies the URL of the media file"},
	AttrSrcdoc:           {"srcdoc", []Kind{KindIframe}, "Specifies the HTML content of the page to show in the iframe]"},
	AttrSrclang:          {"srclang", []Kind{KindTrack}, "Specifies the language of the track text data (required if kind=\"subtitles\")"},
	AttrSrcset:           {"srcset", []Kind{KindImg, KindSource}, "Specifies the URL of the image to use in different situations"},
	AttrStart:            {"start", []Kind{KindOl}, "Specifies the start value of an ordered list"},
	AttrStep:             {"step", []Kind{KindInput}, "Specifies the legal number intervals for an input field"},
	AttrTabindex:         {"tabindex", nil, "Specifies the tabbing order of an element"},
	AttrTarget:           {"target", []Kind{KindA, KindArea, KindBase, KindForm}, "Specifies the target for where to open the linked document or where to submit the form"},
	AttrTitle:            {"title", nil, "Specifies extra information about an element"},
	AttrTranslate:        {"translate", nil, "Specifies whether the content of an element should be translated or not"},
	AttrType:             {"type", []Kind{KindButton, KindEmbed, KindInput, KindLink, KindMenu, KindObject, KindScript, KindSource, KindStyle}, "Specifies the type of element"},
	AttrUsemap:           {"usemap", []Kind{KindImg, KindObject}, "Specifies an image as a client-side image-map"},
	AttrValue:            {"value", []Kind{KindButton, KindInput, KindLi, KindOption, KindMeter, KindProgress, KindParam}, "Specifies the value of the element"},
	AttrWidth:            {"width", []Kind{KindCanvas, KindEmbed, KindIframe, KindImg, KindInput, KindObject, KindVideo}, "Specifies the width of the element"},
	AttrWrap:             {"wrap", []Kind{KindTextarea}, "Specifies how the text in a text area is to be wrapped when submitted in a form"},
}
