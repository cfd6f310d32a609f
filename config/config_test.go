package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		files   map[string]string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name:  "no config file",
			files: map[string]string{},
			want:  &Config{},
		},
		{
			name: "config.yml",
			files: map[string]string{
				"config.yml": `
theme: dunossauro
server:
  port: 9000
  bind: 0.0.0.0
defaults:
  - if: page == 1
    background: blue
  - if: layout == "default"
    verticalAlign: center
`,
			},
			want: &Config{
				Theme:  "dunossauro",
				Server: ServerConfig{Port: 9000, Bind: "0.0.0.0"},
				Defaults: []DefaultCondition{
					{If: "page == 1", Background: "blue"},
					{If: `layout == "default"`, VerticalAlign: "center"},
				},
			},
		},
		{
			name:    "profile config takes precedence",
			profile: "talk",
			files: map[string]string{
				"config.yml":      "theme: base\n",
				"config-talk.yml": "theme: talk\n",
			},
			want: &Config{Theme: "talk"},
		},
		{
			name:    "falls back to config.yaml when profile file is missing",
			profile: "missing",
			files: map[string]string{
				"config.yaml": "browser: /usr/bin/chromium\n",
			},
			want: &Config{Browser: "/usr/bin/chromium"},
		},
		{
			name: "environment variables are expanded",
			files: map[string]string{
				"config.yml": `
themes:
  - name: mine
    templates: ${THEME_ROOT}/templates
    static: ${THEME_ROOT}/static
`,
			},
			env: map[string]string{"THEME_ROOT": "/srv/theme"},
			want: &Config{
				Themes: []ThemeConfig{
					{Name: "mine", Templates: "/srv/theme/templates", Static: "/srv/theme/static"},
				},
			},
		},
		{
			name: "theme without name",
			files: map[string]string{
				"config.yml": "themes:\n  - templates: /a\n    static: /b\n",
			},
			wantErr: true,
		},
		{
			name: "broken yaml",
			files: map[string]string{
				"config.yml": "theme: [",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", tmpDir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			configHomePath = ""
			t.Cleanup(func() { configHomePath = "" })

			dir := filepath.Join(tmpDir, appName)
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("Failed to create config directory: %v", err)
			}
			for name, content := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
					t.Fatalf("Failed to write config file: %v", err)
				}
			}

			got, err := Load(tt.profile)
			if tt.wantErr {
				if err == nil {
					t.Error("Load() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"~", homePath},
		{"~/themes/x", filepath.Join(homePath, "themes", "x")},
		{"/abs/path", "/abs/path"},
		{"relative/~/path", "relative/~/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := expandHome(tt.in); got != tt.want {
				t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
