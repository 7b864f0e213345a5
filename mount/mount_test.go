package mount

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/element"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var (
	item = element.NewStateless("Item", func(p element.Props, _ []*element.Element) *element.Element {
		return element.H("li", element.Props{
			"className":  fmt.Sprintf("item %v", p["kind"]),
			"data-count": p["count"],
			"disabled":   p["disabled"],
			"onClick":    func() {},
		}, element.Text(fmt.Sprint(p["kind"])))
	})
	list = element.NewComponent("List", func(p element.Props, ch []*element.Element) *element.Element {
		return element.H("ul", element.Props{"id": p["id"], "className": "list"}, ch...)
	})
	empty = element.NewComponent("Empty", func(element.Props, []*element.Element) *element.Element {
		return nil
	})
	app = element.NewComponent("App", func(element.Props, []*element.Element) *element.Element {
		return element.H("div", element.Props{"className": "app", "id": "main"},
			element.New(list, element.Props{"id": "list"},
				element.New(item, element.Props{"kind": "first", "count": 1}),
				element.New(item, element.Props{"kind": "second", "count": 2, "disabled": true}),
			),
			element.New(empty, nil),
			element.H("span", element.Props{"id": "x", "title": "ok"}, element.Text("hello")),
		)
	})
)

const appHTML = `<div class="app" id="main"><ul class="list" id="list">` +
	`<li class="item first" data-count="1">first</li>` +
	`<li class="item second" data-count="2" disabled="">second</li></ul>` +
	`<span id="x" title="ok">hello</span></div>`

func mountApp(t *testing.T) *Root {
	root, err := Mount(element.New(app, nil))
	if err != nil {
		t.Fatalf("cannot mount application: %v", err)
	}
	return root
}

func TestMountRendersHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root := mountApp(t)
	s, err := root.HTML()
	require.NoError(t, err)
	if s != appHTML {
		t.Errorf("expected HTML\n%s\nis\n%s", appHTML, s)
	}
	if root.Container().Type != html.DocumentNode || root.Container().FirstChild != root.Instance().Rendered() {
		t.Error("expected rendered output to be attached to a fresh document")
	}
}

func TestMountInstanceTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root := mountApp(t)
	top := root.Instance()
	if top.Element().TypeName() != "App" || top.ParentInstance() != nil {
		t.Errorf("expected top instance to be App, is %v", top)
	}
	div := top.ChildInstances()[0]
	if div.DOM() == nil || top.DOM() != nil {
		t.Error("expected only host instances to have a document node")
	}
	if top.Rendered() != div.DOM() {
		t.Error("expected App to render to its <div>")
	}
	children := div.ChildInstances()
	if len(children) != 3 {
		t.Fatalf("expected div to have 3 children, has %d", len(children))
	}
	listInst, emptyInst := children[0], children[1]
	if listInst.Rendered() == nil || listInst.Rendered().Data != "ul" {
		t.Errorf("expected List to render to <ul>, is %v", listInst.Rendered())
	}
	if emptyInst.Rendered() != nil || len(emptyInst.ChildInstances()) != 0 {
		t.Error("expected Empty to render nothing")
	}
	itemInst := listInst.ChildInstances()[0].ChildInstances()[0]
	if itemInst.Element().TypeName() != "Item" || itemInst.ParentInstance().Element().TypeName() != "ul" {
		t.Errorf("expected Item below <ul>, is %v", itemInst)
	}
}

func TestPublicHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root := mountApp(t)
	top := root.Instance()
	if top.Public() == nil || top.Public().Instance() != top {
		t.Error("expected component App to have a public handle")
	}
	ul := top.ChildInstances()[0].ChildInstances()[0].ChildInstances()[0]
	itemInst := ul.ChildInstances()[0]
	text := itemInst.ChildInstances()[0].ChildInstances()[0]
	if ul.Public() == nil {
		t.Error("expected host instance to have a public handle")
	}
	if itemInst.Public() != nil || text.Public() != nil {
		t.Error("expected stateless and text instances not to have a public handle")
	}
	if s := (&Public{}).String(); s != "public<detached>" {
		t.Errorf("expected detached public handle, is %s", s)
	}
}

func TestMountErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	if _, err := Mount(nil); !errors.Is(err, ErrNilElement) {
		t.Errorf("expected nil element error, is %v", err)
	}
	var loop *element.Component
	loop = element.NewComponent("Loop", func(element.Props, []*element.Element) *element.Element {
		return element.New(loop, nil)
	})
	if _, err := Mount(element.New(loop, nil), WithMaxDepth(10)); !errors.Is(err, ErrRenderDepth) {
		t.Errorf("expected render depth error, is %v", err)
	}
}

func TestMountNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root, err := Mount(element.New(empty, nil))
	require.NoError(t, err)
	s, err := root.HTML()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Nil(t, root.Container().FirstChild)
	root, err = Mount(element.New(element.NewComponent("NoRender", nil), nil))
	require.NoError(t, err)
	assert.Nil(t, root.Instance().Rendered())
}

func TestMountWithContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	body := &html.Node{Type: html.ElementNode, Data: "body"}
	root, err := Mount(element.H("p", nil, element.Text("a<b")), WithContainer(body))
	require.NoError(t, err)
	assert.Equal(t, body, root.Container())
	var b strings.Builder
	require.NoError(t, html.Render(&b, body))
	assert.Equal(t, "<body><p>a&lt;b</p></body>", b.String())
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	tests := []struct {
		props    element.Props
		expected string
	}{
		{element.Props{"htmlFor": "name", "key": "k", "ref": "r"}, `<label for="name"></label>`},
		{element.Props{"hidden": false, "checked": true}, `<label checked=""></label>`},
		{element.Props{"tabIndex": 3, "ratio": 0.5}, `<label ratio="0.5" tabindex="3"></label>`},
		{element.Props{"className": &element.AnimatedString{BaseVal: "icon", AnimVal: "x"}}, `<label class="icon"></label>`},
		{element.Props{"style": "color:red;margin-top : 4px !important"},
			`<label style="color: red; margin-top: 4px !important;"></label>`},
		{element.Props{"style": element.Props{"marginTop": "4px", "color": "red", "border": nil}},
			`<label style="color: red; margin-top: 4px;"></label>`},
		{element.Props{"style": map[string]string{"fontSize": "12px"}}, `<label style="font-size: 12px;"></label>`},
		{element.Props{"style": "color:red"}, `<label style="color: red;"></label>`},
		{element.Props{"style": "color : red;width:1px  "}, `<label style="color: red; width: 1px;"></label>`},
		{element.Props{"style": "color:;width:1px;"}, `<label style="width: 1px;"></label>`},
		{element.Props{"style": "color:"}, `<label></label>`},
		{element.Props{"style": ""}, `<label></label>`},
		{element.Props{"onChange": func() {}, "data": []int{1}}, `<label></label>`},
	}
	for _, tt := range tests {
		root, err := Mount(element.H("label", tt.props))
		require.NoError(t, err)
		s, err := root.HTML()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, s, "props %v", tt.props)
	}
}

func TestCSSPropertyName(t *testing.T) {
	for k, v := range map[string]string{
		"color":           "color",
		"marginTop":       "margin-top",
		"borderTopWidth":  "border-top-width",
		"background-clip": "background-clip",
	} {
		if got := cssPropertyName(k); got != v {
			t.Errorf("expected CSS name of %s to be %s, is %s", k, v, got)
		}
	}
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root := mountApp(t)
	nodes, err := root.QueryAll("ul > li")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
	n, err := root.Query("li[disabled]")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "second", n.FirstChild.Data)
	n, err = root.Query("#main .item.first")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "li", n.Data)
	n, err = root.Query("table")
	require.NoError(t, err)
	assert.Nil(t, n)
	_, err = root.Query("li[")
	assert.Error(t, err)
}

func TestAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root := mountApp(t)
	a := Adapter{}
	top := root.Instance()
	for _, h := range []adapter.Handle{root, top, top.Public()} {
		n, err := a.Normalize(h)
		if err != nil || n != adapter.Node(top) {
			t.Errorf("expected %T to normalize to top instance, is %v (%v)", h, n, err)
		}
	}
	for _, h := range []adapter.Handle{nil, 1, &Public{}, (*Root)(nil), top.Element()} {
		if _, err := a.Normalize(h); !errors.Is(err, adapter.ErrUnsupportedShape) {
			t.Errorf("expected %T to be rejected, error is %v", h, err)
		}
	}
	children := a.ChildrenOf(top)
	if len(children) != 1 || children[0] != adapter.Node(top.ChildInstances()[0]) {
		t.Errorf("expected App to have a single child, has %v", children)
	}
	lis := a.FindAll(top, func(n adapter.Node) bool { return adapter.TypeName(n) == "li" })
	assert.Len(t, lis, 2)
	assert.Equal(t, "li", a.RenderedElementOf(lis[0]).Data)
	assert.Empty(t, a.FindAll(top, func(adapter.Node) bool { return false }))
}

func TestDebug(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	root := mountApp(t)
	s := root.Debug()
	t.Logf("instance tree:\n%s", s)
	for _, label := range []string{"<App/>", "<List id=\"list\"/>", `"hello"`, "<Empty/>"} {
		if !strings.Contains(s, label) {
			t.Errorf("expected debug output to contain %s", label)
		}
	}
	assert.Equal(t, "<nil>\n", Debug(nil))
}
