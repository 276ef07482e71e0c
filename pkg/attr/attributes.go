package attr

import "github.com/vango-dev/htmlbuilder/pkg/vdom"

func Accept(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrAccept, value) }
func AcceptCharset(value string) vdom.Attr    { return vdom.NewAttr(vdom.AttrAcceptCharset, value) }
func Accesskey(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrAccesskey, value) }
func Action(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrAction, value) }
func Alt(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrAlt, value) }
func Async(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrAsync, value) }
func Autocomplete(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrAutocomplete, value) }
func Autofocus(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrAutofocus, value) }
func Autoplay(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrAutoplay, value) }
func Challenge(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrChallenge, value) }
func Charset(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrCharset, value) }
func Checked(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrChecked, value) }
func Cite(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrCite, value) }
func Cols(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrCols, value) }
func Colspan(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrColspan, value) }
func Content(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrContent, value) }
func Contenteditable(value string) vdom.Attr  { return vdom.NewAttr(vdom.AttrContenteditable, value) }
func Contextmenu(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrContextmenu, value) }
func Controls(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrControls, value) }
func Coords(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrCoords, value) }
func Datetime(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrDatetime, value) }
func Default(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrDefault, value) }
func Defer(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrDefer, value) }
func Dir(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrDir, value) }
func Dirname(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrDirname, value) }
func Disabled(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrDisabled, value) }
func Download(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrDownload, value) }
func Draggable(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrDraggable, value) }
func Dropzone(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrDropzone, value) }
func Enctype(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrEnctype, value) }
func For(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrFor, value) }
func Form(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrForm, value) }
func Formaction(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrFormaction, value) }
func Headers(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrHeaders, value) }
func Height(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrHeight, value) }
func Hidden(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrHidden, value) }
func High(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrHigh, value) }
func Href(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrHref, value) }
func Hreflang(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrHreflang, value) }
func HttpEquiv(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrHttpEquiv, value) }
func Id(value string) vdom.Attr               { return vdom.NewAttr(vdom.AttrId, value) }
func Ismap(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrIsmap, value) }
func Keytype(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrKeytype, value) }
func Kind(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrTrackKind, value) }
func Label(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrLabel, value) }
func Lang(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrLang, value) }
func List(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrList, value) }
func Loop(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrLoop, value) }
func Low(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrLow, value) }
func Max(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrMax, value) }
func Maxlength(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrMaxlength, value) }
func Media(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrMedia, value) }
func Method(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrMethod, value) }
func Min(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrMin, value) }
func Multiple(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrMultiple, value) }
func Muted(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrMuted, value) }
func Name(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrName, value) }
func Novalidate(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrNovalidate, value) }
func Onabort(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnabort, value) }
func Onafterprint(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrOnafterprint, value) }
func Onbeforeprint(value string) vdom.Attr    { return vdom.NewAttr(vdom.AttrOnbeforeprint, value) }
func Onbeforeunload(value string) vdom.Attr   { return vdom.NewAttr(vdom.AttrOnbeforeunload, value) }
func Onblur(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOnblur, value) }
func Oncanplay(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOncanplay, value) }
func Oncanplaythrough(value string) vdom.Attr { return vdom.NewAttr(vdom.AttrOncanplaythrough, value) }
func Onchange(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnchange, value) }
func Onclick(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnclick, value) }
func Oncontextmenu(value string) vdom.Attr    { return vdom.NewAttr(vdom.AttrOncontextmenu, value) }
func Oncopy(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOncopy, value) }
func Oncuechange(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOncuechange, value) }
func Oncut(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrOncut, value) }
func Ondblclick(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOndblclick, value) }
func Ondrag(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOndrag, value) }
func Ondragend(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOndragend, value) }
func Ondragenter(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOndragenter, value) }
func Ondragleave(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOndragleave, value) }
func Ondragover(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOndragover, value) }
func Ondragstart(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOndragstart, value) }
func Ondrop(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOndrop, value) }
func Ondurationchange(value string) vdom.Attr { return vdom.NewAttr(vdom.AttrOndurationchange, value) }
func Onemptied(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnemptied, value) }
func Onended(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnended, value) }
func Onerror(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnerror, value) }
func Onfocus(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnfocus, value) }
func Onhashchange(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrOnhashchange, value) }
func Oninput(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOninput, value) }
func Oninvalid(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOninvalid, value) }
func Onkeydown(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnkeydown, value) }
func Onkeypress(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOnkeypress, value) }
func Onkeyup(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnkeyup, value) }
func Onload(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOnload, value) }
func Onloadeddata(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrOnloadeddata, value) }
func Onloadedmetadata(value string) vdom.Attr { return vdom.NewAttr(vdom.AttrOnloadedmetadata, value) }
func Onloadstart(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOnloadstart, value) }
func Onmousedown(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOnmousedown, value) }
func Onmousemove(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOnmousemove, value) }
func Onmouseout(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOnmouseout, value) }
func Onmouseover(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrOnmouseover, value) }
func Onmouseup(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnmouseup, value) }
func Onmousewheel(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrOnmousewheel, value) }
func Onoffline(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnoffline, value) }
func Ononline(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnonline, value) }
func Onpagehide(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOnpagehide, value) }
func Onpageshow(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOnpageshow, value) }
func Onpaste(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnpaste, value) }
func Onpause(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnpause, value) }
func Onplay(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOnplay, value) }
func Onplaying(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnplaying, value) }
func Onpopstate(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOnpopstate, value) }
func Onprogress(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrOnprogress, value) }
func Onratechange(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrOnratechange, value) }
func Onreset(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnreset, value) }
func Onresize(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnresize, value) }
func Onscroll(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnscroll, value) }
func Onsearch(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnsearch, value) }
func Onseeked(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnseeked, value) }
func Onseeking(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnseeking, value) }
func Onselect(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnselect, value) }
func Onshow(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrOnshow, value) }
func Onstalled(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnstalled, value) }
func Onstorage(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnstorage, value) }
func Onsubmit(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnsubmit, value) }
func Onsuspend(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnsuspend, value) }
func Ontimeupdate(value string) vdom.Attr     { return vdom.NewAttr(vdom.AttrOntimeupdate, value) }
func Ontoggle(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOntoggle, value) }
func Onunload(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrOnunload, value) }
func Onvolumechange(value string) vdom.Attr   { return vdom.NewAttr(vdom.AttrOnvolumechange, value) }
func Onwaiting(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrOnwaiting, value) }
func Onwheel(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOnwheel, value) }
func Open(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrOpen, value) }
func Optimum(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrOptimum, value) }
func Pattern(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrPattern, value) }
func Placeholder(value string) vdom.Attr      { return vdom.NewAttr(vdom.AttrPlaceholder, value) }
func Poster(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrPoster, value) }
func Preload(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrPreload, value) }
func Readonly(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrReadonly, value) }
func Rel(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrRel, value) }
func Required(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrRequired, value) }
func Reversed(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrReversed, value) }
func Rows(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrRows, value) }
func Rowspan(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrRowspan, value) }
func Sandbox(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrSandbox, value) }
func Scope(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrScope, value) }
func Scoped(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrScoped, value) }
func Selected(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrSelected, value) }
func Shape(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrShape, value) }
func Size(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrSize, value) }
func Sizes(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrSizes, value) }
func Span(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrSpan, value) }
func Spellcheck(value string) vdom.Attr       { return vdom.NewAttr(vdom.AttrSpellcheck, value) }
func Src(value string) vdom.Attr              { return vdom.NewAttr(vdom.AttrSrc, value) }
func Srcdoc(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrSrcdoc, value) }
func Srclang(value string) vdom.Attr          { return vdom.NewAttr(vdom.AttrSrclang, value) }
func Srcset(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrSrcset, value) }
func Start(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrStart, value) }
func Step(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrStep, value) }
func Tabindex(value string) vdom.Attr         { return vdom.NewAttr(vdom.AttrTabindex, value) }
func Target(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrTarget, value) }
func Title(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrTitle, value) }
func Translate(value string) vdom.Attr        { return vdom.NewAttr(vdom.AttrTranslate, value) }
func Type(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrType, value) }
func Usemap(value string) vdom.Attr           { return vdom.NewAttr(vdom.AttrUsemap, value) }
func Value(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrValue, value) }
func Width(value string) vdom.Attr            { return vdom.NewAttr(vdom.AttrWidth, value) }
func Wrap(value string) vdom.Attr             { return vdom.NewAttr(vdom.AttrWrap, value) }
