package el

import "github.com/vango-dev/htmlbuilder/pkg/vdom"

// Element constructors. Each panics with a *vdom.BuildError when the
// attributes or content are rejected; use Build to turn that into an error.

func A(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindA, attrs, content)
}
func Abbr(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindAbbr, attrs, content)
}
func Acronym(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindAcronym, attrs, content)
}
func Address(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindAddress, attrs, content)
}
func Applet(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindApplet, attrs, content)
}
func Area(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindArea, attrs, content)
}
func Article(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindArticle, attrs, content)
}
func Aside(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindAside, attrs, content)
}
func Audio(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindAudio, attrs, content)
}
func B(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindB, attrs, content)
}
func Base(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBase, attrs, content)
}
func Basefont(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBasefont, attrs, content)
}
func Bdi(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBdi, attrs, content)
}
func Bdo(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBdo, attrs, content)
}
func Big(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBig, attrs, content)
}
func Blockquote(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBlockquote, attrs, content)
}
func Body(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBody, attrs, content)
}
func Br(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindBr, attrs, content)
}
func Button(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindButton, attrs, content)
}
func Canvas(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindCanvas, attrs, content)
}
func Caption(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindCaption, attrs, content)
}
func Center(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindCenter, attrs, content)
}
func Cite(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindCite, attrs, content)
}
func Code(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindCode, attrs, content)
}
func Col(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindCol, attrs, content)
}
func Colgroup(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindColgroup, attrs, content)
}
func Datalist(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDatalist, attrs, content)
}
func Dd(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDd, attrs, content)
}
func Del(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDel, attrs, content)
}
func Details(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDetails, attrs, content)
}
func Dfn(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDfn, attrs, content)
}
func Dialog(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDialog, attrs, content)
}
func Dir(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDir, attrs, content)
}
func Div(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDiv, attrs, content)
}
func Dl(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDl, attrs, content)
}
func Dt(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindDt, attrs, content)
}
func Em(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindEm, attrs, content)
}
func Embed(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindEmbed, attrs, content)
}
func Fieldset(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFieldset, attrs, content)
}
func Figcaption(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFigcaption, attrs, content)
}
func Figure(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFigure, attrs, content)
}
func Font(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFont, attrs, content)
}
func Footer(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFooter, attrs, content)
}
func Form(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindForm, attrs, content)
}
func Frame(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFrame, attrs, content)
}
func Frameset(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindFrameset, attrs, content)
}
func H1(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindH1, attrs, content)
}
func H2(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindH2, attrs, content)
}
func H3(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindH3, attrs, content)
}
func H4(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindH4, attrs, content)
}
func H5(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindH5, attrs, content)
}
func H6(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindH6, attrs, content)
}
func Head(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindHead, attrs, content)
}
func Header(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindHeader, attrs, content)
}
func Hr(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindHr, attrs, content)
}
func Html(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindHtml, attrs, content)
}
func I(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindI, attrs, content)
}
func Iframe(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindIframe, attrs, content)
}
func Img(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindImg, attrs, content)
}
func Input(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindInput, attrs, content)
}
func Ins(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindIns, attrs, content)
}
func Kbd(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindKbd, attrs, content)
}
func Keygen(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindKeygen, attrs, content)
}
func Label(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindLabel, attrs, content)
}
func Legend(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindLegend, attrs, content)
}
func Li(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindLi, attrs, content)
}
func Link(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindLink, attrs, content)
}
func Main(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMain, attrs, content)
}
func Map(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMap, attrs, content)
}
func Mark(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMark, attrs, content)
}
func Menu(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMenu, attrs, content)
}
func Menuitem(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMenuitem, attrs, content)
}
func Meta(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMeta, attrs, content)
}
func Meter(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindMeter, attrs, content)
}
func Nav(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindNav, attrs, content)
}
func Noframes(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindNoframes, attrs, content)
}
func Noscript(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindNoscript, attrs, content)
}
func Object(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindObject, attrs, content)
}
func Ol(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindOl, attrs, content)
}
func Optgroup(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindOptgroup, attrs, content)
}
func Option(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindOption, attrs, content)
}
func Output(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindOutput, attrs, content)
}
func P(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindP, attrs, content)
}
func Param(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindParam, attrs, content)
}
func Picture(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindPicture, attrs, content)
}
func Pre(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindPre, attrs, content)
}
func Progress(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindProgress, attrs, content)
}
func Q(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindQ, attrs, content)
}
func Rp(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindRp, attrs, content)
}
func Rt(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindRt, attrs, content)
}
func Ruby(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindRuby, attrs, content)
}
func S(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindS, attrs, content)
}
func Samp(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSamp, attrs, content)
}
func Script(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindScript, attrs, content)
}
func Section(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSection, attrs, content)
}
func Select(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSelect, attrs, content)
}
func Small(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSmall, attrs, content)
}
func Source(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSource, attrs, content)
}
func Span(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSpan, attrs, content)
}
func Strike(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindStrike, attrs, content)
}
func Strong(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindStrong, attrs, content)
}
func Style(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindStyle, attrs, content)
}
func Sub(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSub, attrs, content)
}
func Summary(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSummary, attrs, content)
}
func Sup(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindSup, attrs, content)
}
func Table(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTable, attrs, content)
}
func Tbody(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTbody, attrs, content)
}
func Td(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTd, attrs, content)
}
func Textarea(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTextarea, attrs, content)
}
func Tfoot(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTfoot, attrs, content)
}
func Th(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTh, attrs, content)
}
func Thead(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindThead, attrs, content)
}
func Time(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTime, attrs, content)
}
func Title(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTitle, attrs, content)
}
func Tr(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTr, attrs, content)
}
func Track(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTrack, attrs, content)
}
func Tt(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindTt, attrs, content)
}
func U(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindU, attrs, content)
}
func Ul(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindUl, attrs, content)
}
func Var(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindVar, attrs, content)
}
func Video(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindVideo, attrs, content)
}
func Wbr(attrs []vdom.Attribute, content ...any) *vdom.Element {
	return build(vdom.KindWbr, attrs, content)
}
