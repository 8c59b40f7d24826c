package jsonschemair

import "testing"

func TestTypeName(t *testing.T) {
	cases := []struct {
		title string
		path  string
		want  string
	}{
		{path: "#/definitions/user_id", want: "UserID"},
		{title: "HTTP Client", want: "HTTPClient"},
		{path: "#", want: "Root"},
	}

	for _, tc := range cases {
		p := RootPath()
		if tc.path != "" {
			var err error
			p, err = PathFromString(tc.path)
			if err != nil {
				t.Fatalf("PathFromString(%q): %v", tc.path, err)
			}
		}
		got := TypeName(p, tc.title)
		if got != tc.want {
			t.Errorf("TypeName(%q, %q) = %q, want %q", tc.path, tc.title, got, tc.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"Tag":   "Tags",
		"Class": "Classes",
		"":      "",
	}
	for in, want := range cases {
		if got := Pluralize(in); got != want {
			t.Errorf("Pluralize(%q) = %q, want %q", in, got, want)
		}
	}
}
