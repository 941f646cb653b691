package resource

import (
	"testing"
	"time"

	"todo-api/configs"
)

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TODO_TEST_SET", "from-env")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain value", value: "plain", want: "plain"},
		{name: "env set", value: "${TODO_TEST_SET:fallback}", want: "from-env"},
		{name: "env unset uses default", value: "${TODO_TEST_UNSET:fallback}", want: "fallback"},
		{name: "env unset without default", value: "${TODO_TEST_UNSET}", want: ""},
		{name: "empty default", value: "${TODO_TEST_UNSET:}", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.value); got != tt.want {
				t.Errorf("resolveEnvVariable(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadResolvesNestedKeys(t *testing.T) {
	t.Setenv("TODO_TEST_PATH", "/tmp/todo.db")

	content := []byte(`
app:
  db:
    path: ${TODO_TEST_PATH:test.db}
    max-open-conns: 4
    conn-max-lifetime: ${TODO_TEST_UNSET:90s}
  todo:
    fixture: ${TODO_TEST_UNSET:true}
`)
	if err := Load(content); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := GetString("app.db.path"); got != "/tmp/todo.db" {
		t.Errorf("app.db.path = %q", got)
	}
	if got := GetInt("app.db.max-open-conns"); got != 4 {
		t.Errorf("app.db.max-open-conns = %d", got)
	}
	if got := GetDuration("app.db.conn-max-lifetime"); got != 90*time.Second {
		t.Errorf("app.db.conn-max-lifetime = %v", got)
	}
	if !GetBool("app.todo.fixture") {
		t.Error("app.todo.fixture = false, want true")
	}
}

func TestBundledDefaults(t *testing.T) {
	if err := Load(configs.Application); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := GetString("app.server.context-path"); got != "" {
		t.Errorf("context-path = %q, want empty", got)
	}
	if got := Get("app.db.busy-timeout"); got == nil {
		t.Error("app.db.busy-timeout missing")
	}
}
