package site

import (
	"net/url"
	"strings"
	"testing"
)

func TestActivePath(t *testing.T) {
	tests := map[string]string{
		"":                   "/",
		"/":                  "/",
		"/projects":          "/projects",
		"/projects/":         "/projects",
		"/blog":              "/blog",
		"/blog/":             "/blog",
		"/blog/hello-world":  "/blog",
		"/blog/a/b":          "/blog",
		"/blogging-for-devs": "/blogging-for-devs",
	}

	for in, want := range tests {
		if got := ActivePath(in); got != want {
			t.Errorf("ActivePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNav(t *testing.T) {
	items := Nav("/blog/some-post", true)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.Path)
		}
	}
	if len(active) != 1 || active[0] != "/blog" {
		t.Errorf("active = %v, want [/blog]", active)
	}

	want := []string{"home", "blog", "projects"}
	for i, it := range items {
		if it.Name != want[i] {
			t.Errorf("items[%d].Name = %q, want %q", i, it.Name, want[i])
		}
	}
}

func TestNav_BlogDisabled(t *testing.T) {
	items := Nav("/", false)
	for _, it := range items {
		if it.Path == "/blog" {
			t.Fatal("blog entry present while blog is disabled")
		}
	}
	if !items[0].Active {
		t.Error("home should be active on /")
	}
}

func TestNav_DoesNotShareState(t *testing.T) {
	first := Nav("/projects", true)
	_ = Nav("/", true)
	if !first[2].Active {
		t.Error("later calls changed an earlier result")
	}
}

func TestStaticTables(t *testing.T) {
	for _, s := range Socials {
		if s.Label == "" || s.Icon == "" {
			t.Errorf("incomplete social link %+v", s)
		}
		if u, err := url.Parse(s.Href); err != nil || u.Scheme != "https" {
			t.Errorf("social %s has non-https href %q", s.Label, s.Href)
		}
	}

	for _, app := range WebApps {
		if app.Title == "" || app.Repo == "" || app.Demo == "" || len(app.Tags) == 0 {
			t.Errorf("incomplete web app %+v", app.Title)
		}
		if !strings.HasPrefix(app.Thumbnail, "/static/") {
			t.Errorf("web app %s thumbnail %q is not a static asset", app.Title, app.Thumbnail)
		}
	}

	for _, tool := range Tools {
		if tool.Title == "" || tool.Repo == "" || tool.External == "" || len(tool.Techs) == 0 {
			t.Errorf("incomplete tool %+v", tool.Title)
		}
	}

	if !strings.Contains(Metadata.Social.Email, "@") {
		t.Errorf("Metadata.Social.Email = %q", Metadata.Social.Email)
	}
}
