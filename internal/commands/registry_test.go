package commands_test

import (
	"testing"

	"todo/internal/commands"
)

// aliasCmd reuses VersionCmd's behavior under a custom name and aliases.
type aliasCmd struct {
	commands.VersionCmd
	name    string
	aliases []string
}

func (c *aliasCmd) Name() string      { return c.name }
func (c *aliasCmd) Aliases() []string { return c.aliases }

func TestRegistry_FindByAlias(t *testing.T) {
	r := commands.NewRegistry()
	cmd := &aliasCmd{name: "list", aliases: []string{"ls"}}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"list", "ls"} {
		got, ok := r.Find(name)
		if !ok || got != cmd {
			t.Errorf("Find(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := r.Find("missing"); ok {
		t.Error("expected missing command not found")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&aliasCmd{name: "rm", aliases: []string{"delete"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		cmd  *aliasCmd
		want string
	}{
		{"same name", &aliasCmd{name: "rm"}, "command already registered: rm"},
		{"alias clash", &aliasCmd{name: "remove", aliases: []string{"delete"}}, "command already registered: delete"},
		{"self clash", &aliasCmd{name: "add", aliases: []string{"add"}}, "command already registered: add"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.cmd)
			if err == nil || err.Error() != tt.want {
				t.Errorf("expected %q, got %v", tt.want, err)
			}
			if _, ok := r.Find(tt.cmd.name); ok && tt.cmd.name != "rm" {
				t.Errorf("failed registration must not add %q", tt.cmd.name)
			}
		})
	}
}

func TestRegistry_AllSortedOnce(t *testing.T) {
	r := commands.NewRegistry()
	for _, c := range []*aliasCmd{
		{name: "version"},
		{name: "add", aliases: []string{"create"}},
		{name: "list", aliases: []string{"ls"}},
	} {
		if err := r.Register(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := r.All()
	var names []string
	for _, c := range all {
		names = append(names, c.Name())
	}
	if len(names) != 3 || names[0] != "add" || names[1] != "list" || names[2] != "version" {
		t.Errorf("expected [add list version], got %v", names)
	}
}
