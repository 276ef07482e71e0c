package vdom

// Kind identifies an element kind from the HTML element table.
type Kind uint8

// Element kinds. KindInvalid is the zero value and never names a real element.
const (
	KindInvalid Kind = iota
	KindA
	KindAbbr
	KindAcronym
	KindAddress
	KindApplet
	KindArea
	KindArticle
	KindAside
	KindAudio
	KindB
	KindBase
	KindBasefont
	KindBdi
	KindBdo
	KindBig
	KindBlockquote
	KindBody
	KindBr
	KindButton
	KindCanvas
	KindCaption
	KindCenter
	KindCite
	KindCode
	KindCol
	KindColgroup
	KindDatalist
	KindDd
	KindDel
	KindDetails
	KindDfn
	KindDialog
	KindDir
	KindDiv
	KindDl
	KindDt
	KindEm
	KindEmbed
	KindFieldset
	KindFigcaption
	KindFigure
	KindFont
	KindFooter
	KindForm
	KindFrame
	KindFrameset
	KindH1
	KindH2
	KindH3
	KindH4
	KindH5
	KindH6
	KindHead
	KindHeader
	KindHr
	KindHtml
	KindI
	KindIframe
	KindImg
	KindInput
	KindIns
	KindKbd
	KindKeygen
	KindLabel
	KindLegend
	KindLi
	KindLink
	KindMain
	KindMap
	KindMark
	KindMenu
	KindMenuitem
	KindMeta
	KindMeter
	KindNav
	KindNoframes
	KindNoscript
	KindObject
	KindOl
	KindOptgroup
	KindOption
	KindOutput
	KindP
	KindParam
	KindPicture
	KindPre
	KindProgress
	KindQ
	KindRp
	KindRt
	KindRuby
	KindS
	KindSamp
	KindScript
	KindSection
	KindSelect
	KindSmall
	KindSource
	KindSpan
	KindStrike
	KindStrong
	KindStyle
	KindSub
	KindSummary
	KindSup
	KindTable
	KindTbody
	KindTd
	KindTextarea
	KindTfoot
	KindTh
	KindThead
	KindTime
	KindTitle
	KindTr
	KindTrack
	KindTt
	KindU
	KindUl
	KindVar
	KindVideo
	KindWbr

	kindCount
)

type kindInfo struct {
	name        string
	selfClosing bool
	description string
}

var kindTable = [kindCount]kindInfo{
	KindA:          {"a", false, "Defines a hyperlink"},
	KindAbbr:       {"abbr", false, "Defines an abbreviation or an acronym"},
	KindAcronym:    {"acronym", false, "Not supported in HTML5. Use <abbr> instead."},
	KindAddress:    {"address", false, "Defines contact information for the author/owner of a document"},
	KindApplet:     {"applet", false, "Not supported in HTML5. Use <embed> or <object> instead."},
	KindArea:       {"area", true, "Defines an area inside an image-map"},
	KindArticle:    {"article", false, "Defines an article"},
	KindAside:      {"aside", false, "Defines content aside from the page content"},
	KindAudio:      {"audio", false, "Defines sound content"},
	KindB:          {"b", false, "Defines bold text"},
	KindBase:       {"base", true, "Specifies the base URL/target for all relative URLs in a document"},
	KindBasefont:   {"basefont", false, "Not supported in HTML5. Use CSS instead."},
	KindBdi:        {"bdi", false, "Isolates a part of text that might be formatted in a different direction from other text outside it"},
	KindBdo:        {"bdo", false, "Overrides the current text direction"},
	KindBig:        {"big", false, "Not supported in HTML5. Use CSS instead."},
	KindBlockquote: {"blockquote", false, "Defines a section that is quoted from another source"},
	KindBody:       {"body", false, "Defines the document's body"},
	KindBr:         {"br", true, "Defines a single line break"},
	KindButton:     {"button", false, "Defines a clickable button"},
	KindCanvas:     {"canvas", false, "Used to draw graphics, on the fly, via scripting (usually JavaScript)"},
	KindCaption:    {"caption", false, "Defines a table caption"},
	KindCenter:     {"center", false, "Not supported in HTML5. Use CSS instead."},
	KindCite:       {"cite", false, "Defines the title of a work"},
	KindCode:       {"code", false, "Defines a piece of computer code"},
	KindCol:        {"col", true, "Specifies column properties for each column within a <colgroup> element"},
	KindColgroup:   {"colgroup", false, "Specifies a group of one or more columns in a table for formatting"},
	KindDatalist:   {"datalist", false, "Specifies a list of pre-defined options for input controls"},
	KindDd:         {"dd", false, "Defines a description/value of a term in a description list"},
	KindDel:        {"del", false, "Defines text that has been deleted from a document"},
	KindDetails:    {"details", false, "Defines additional details that the user can view or hide"},
	KindDfn:        {"dfn", false, "Represents the defining instance of a term"},
	KindDialog:     {"dialog", false, "Defines a dialog box or window"},
	KindDir:        {"dir", false, "Not supported in HTML5. Use <ul> instead. Defines a directory list"},
	KindDiv:        {"div", false, "Defines a section in a document"},
	KindDl:         {"dl", false, "Defines a description list"},
	KindDt:         {"dt", false, "Defines a term/name in a description list"},
	KindEm:         {"em", false, "Defines emphasized text"},
	KindEmbed:      {"embed", true, "Defines a container for an external (non-HTML) application"},
	KindFieldset:   {"fieldset", false, "Groups related elements in a form"},
	KindFigcaption: {"figcaption", false, "Defines a caption for a <figure> element"},
	KindFigure:     {"figure", false, "Specifies self-contained content"},
	KindFont:       {"font", false, "Not supported in HTML5. Use CSS instead."},
	KindFooter:     {"footer", false, "Defines a footer for a document or section"},
	KindForm:       {"form", false, "Defines an HTML form for user input"},
	KindFrame:      {"frame", false, "Not supported in HTML5."},
	KindFrameset:   {"frameset", false, "Not supported in HTML5."},
	KindH1:         {"h1", false, "HTML heading"},
	KindH2:         {"h2", false, "HTML heading"},
	KindH3:         {"h3", false, "HTML heading"},
	KindH4:         {"h4", false, "HTML heading"},
	KindH5:         {"h5", false, "HTML heading"},
	KindH6:         {"h6", false, "HTML heading"},
	KindHead:       {"head", false, "Defines information about the document"},
	KindHeader:     {"header", false, "Defines a header for a document or section"},
	KindHr:         {"hr", true, "Defines a thematic change in the content"},
	KindHtml:       {"html", false, "Defines the root of an HTML document"},
	KindI:          {"i", false, "Defines a part of text in an alternate voice or mood"},
	KindIframe:     {"iframe", false, "Defines an inline frame"},
	KindImg:        {"img", true, "Defines an image"},
	KindInput:      {"input", true, "Defines an input control"},
	KindIns:        {"ins", false, "Defines a text that has been inserted into a document"},
	KindKbd:        {"kbd", false, "Defines keyboard input"},
	KindKeygen:     {"keygen", false, "Defines a key-pair generator field (for forms)"},
	KindLabel:      {"label", false, "Defines a label for an <input> element"},
	KindLegend:     {"legend", false, "Defines a caption for a <fieldset> element"},
	KindLi:         {"li", false, "Defines a list item"},
	KindLink:       {"link", true, "Defines the relationship between a document and an external resource (most used to link to style sheets)"},
	KindMain:       {"main", false, "Specifies the main content of a document"},
	KindMap:        {"map", false, "Defines a client-side image-map"},
	KindMark:       {"mark", false, "Defines marked/highlighted text"},
	KindMenu:       {"menu", false, "Defines a list/menu of commands"},
	KindMenuitem:   {"menuitem", false, "Defines a command/menu item that the user can invoke from a popup menu"},
	KindMeta:       {"meta", true, "Defines metadata about an HTML document"},
	KindMeter:      {"meter", false, "Defines a scalar measurement within a known range (a gauge)"},
	KindNav:        {"nav", false, "Defines navigation links"},
	KindNoframes:   {"noframes", false, "Not supported in HTML5."},
	KindNoscript:   {"noscript", false, "Defines an alternate content for users that do not support client-side scripts"},
	KindObject:     {"object", false, "Defines an embedded object"},
	KindOl:         {"ol", false, "Defines an ordered list"},
	KindOptgroup:   {"optgroup", false, "Defines a group of related options in a drop-down list"},
	KindOption:     {"option", false, "Defines an option in a drop-down list"},
	KindOutput:     {"output", false, "Defines the result of a calculation"},
	KindP:          {"p", false, "Defines a paragraph"},
	KindParam:      {"param", true, "Defines a parameter for an object"},
	KindPicture:    {"picture", false, "Defines a container for multiple image resources"},
	KindPre:        {"pre", false, "Defines preformatted text"},
	KindProgress:   {"progress", false, "Represents the progress of a task"},
	KindQ:          {"q", false, "Defines a short quotation"},
	KindRp:         {"rp", false, "Defines what to show in browsers that do not support ruby annotations"},
	KindRt:         {"rt", false, "Defines an explanation/pronunciation of characters (for East Asian typography)"},
	KindRuby:       {"ruby", false, "Defines a ruby annotation (for East Asian typography)"},
	KindS:          {"s", false, "Defines text that is no longer correct"},
	KindSamp:       {"samp", false, "Defines sample output from a computer program"},
	KindScript:     {"script", false, "Defines a client-side script"},
	KindSection:    {"section", false, "Defines a section in a document"},
	KindSelect:     {"select", false, "Defines a drop-down list"},
	KindSmall:      {"small", false, "Defines smaller text"},
	KindSource:     {"source", false, "Defines multiple media resources for media elements (<video> and <audio>)"},
	KindSpan:       {"span", false, "Defines a section in a document"},
	KindStrike:     {"strike", false, "Not supported in HTML5. Use <del> or <s> instead."},
	KindStrong:     {"strong", false, "Defines important text"},
	KindStyle:      {"style", false, "Defines style information for a document"},
	KindSub:        {"sub", false, "Defines subscripted text"},
	KindSummary:    {"summary", false, "Defines a visible heading for a <details> element"},
	KindSup:        {"sup", false, "Defines superscripted text"},
	KindTable:      {"table", false, "Defines a table"},
	KindTbody:      {"tbody", false, "Groups the body content in a table"},
	KindTd:         {"td", false, "Defines a cell in a table"},
	KindTextarea:   {"textarea", false, "Defines a multiline input control (text area)"},
	KindTfoot:      {"tfoot", false, "Groups the footer content in a table"},
	KindTh:         {"th", false, "Defines a header cell in a table"},
	KindThead:      {"thead", false, "Groups the header content in a table"},
	KindTime:       {"time", false, "Defines a date/time"},
	KindTitle:      {"title", false, "Defines a title for the document"},
	KindTr:         {"tr", false, "Defines a row in a table"},
	KindTrack:      {"track", false, "Defines text tracks for media elements (<video> and <audio>)"},
	KindTt:         {"tt", false, "Not supported in HTML5. Use CSS instead."},
	KindU:          {"u", false, "Defines text that should be stylistically different from normal text"},
	KindUl:         {"ul", false, "Defines an unordered list"},
	KindVar:        {"var", false, "Defines a variable"},
	KindVideo:      {"video", false, "Defines a video or movie"},
	KindWbr:        {"wbr", false, "Defines a possible line-break"},
}
