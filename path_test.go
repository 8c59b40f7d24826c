package jsonschemair

import "testing"

func TestPathFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#", want: "#"},
		{in: "#/properties/name", want: "#/properties/name"},
		{in: "properties/name", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := PathFromString(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("PathFromString(%q): expected error, got nil", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("PathFromString(%q): unexpected error: %v", tc.in, err)
			}
			if got := p.String(); got != tc.want {
				t.Errorf("PathFromString(%q).String() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPathAddChild(t *testing.T) {
	root := RootPath()
	child := root.AddChild("properties").AddChild("name")

	if got, want := child.String(), "#/properties/name"; got != want {
		t.Errorf("child.String() = %q, want %q", got, want)
	}
	if got, want := child.Name(), "name"; got != want {
		t.Errorf("child.Name() = %q, want %q", got, want)
	}
	if child.Depth() != 3 {
		t.Errorf("child.Depth() = %d, want 3", child.Depth())
	}
}

func TestPathParent(t *testing.T) {
	child, err := PathFromString("#/properties/name")
	if err != nil {
		t.Fatalf("PathFromString: %v", err)
	}

	parent, ok := child.Parent()
	if !ok {
		t.Fatal("Parent() reported no parent for a depth-3 path")
	}
	if got, want := parent.String(), "#/properties"; got != want {
		t.Errorf("parent.String() = %q, want %q", got, want)
	}

	root := RootPath()
	if _, ok := root.Parent(); ok {
		t.Error("Parent() reported a parent for the root path")
	}
}

func TestPathEqual(t *testing.T) {
	a, _ := PathFromString("#/properties/name")
	b := RootPath().AddChild("properties").AddChild("name")

	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a, b)
	}
	if a.Equal(RootPath()) {
		t.Error("non-root path reported equal to root")
	}
}
