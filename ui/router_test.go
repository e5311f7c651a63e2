package ui

import "testing"

func TestRoute(t *testing.T) {
	cases := []struct {
		location string
		want     PageKind
	}{
		{"index.html", PageHome},
		{"/", PageHome},
		{"", PageHome},
		{"foo.html", PageHome},
		{"novel.html?id=x", PageNovel},
		{"/site/novel.html", PageNovel},
		{"/site/chapter.html?id=x&chapter=2", PageChapter},
		{"chapter.html", PageChapter},
		{"%zz", PageHome},
	}
	for _, tc := range cases {
		if got := Route(tc.location).Kind; got != tc.want {
			t.Errorf("Route(%q) = %s, want %s", tc.location, got, tc.want)
		}
	}
}

func TestRouteQuery(t *testing.T) {
	p := Route("/site/chapter.html?id=nano_machine&chapter=12")
	if p.Query.Get("id") != "nano_machine" || p.Query.Get("chapter") != "12" {
		t.Fatalf("query = %v", p.Query)
	}
}

func TestLocationBuilders(t *testing.T) {
	if got := NovelLocation("a b"); got != "novel.html?id=a+b" {
		t.Errorf("NovelLocation = %q", got)
	}
	loc := ChapterLocation("n1", 3)
	p := Route(loc)
	if p.Kind != PageChapter || p.Query.Get("id") != "n1" || p.Query.Get("chapter") != "3" {
		t.Errorf("ChapterLocation round trip = %q -> %+v", loc, p)
	}
	if Route(HomeLocation()).Kind != PageHome {
		t.Error("HomeLocation is not home")
	}
}
