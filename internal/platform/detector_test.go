package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write os-release: %v", err)
	}
	return path
}

func TestDetectFromFile(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantID     string
		wantFamily Family
	}{
		{
			name: "ubuntu",
			content: `NAME="Ubuntu"
VERSION_ID="24.04"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 24.04.1 LTS"
`,
			wantID:     "ubuntu",
			wantFamily: FamilyDebian,
		},
		{
			name: "debian",
			content: `PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
ID=debian
VERSION_ID="12"
`,
			wantID:     "debian",
			wantFamily: FamilyDebian,
		},
		{
			name: "fedora",
			content: `NAME="Fedora Linux"
ID=fedora
VERSION_ID=40
PRETTY_NAME="Fedora Linux 40 (Server Edition)"
`,
			wantID:     "fedora",
			wantFamily: FamilyRHEL,
		},
		{
			name: "rocky via id_like",
			content: `NAME="Rocky Linux"
ID="rocky"
ID_LIKE="rhel centos fedora"
VERSION_ID="9.3"
`,
			wantID:     "rocky",
			wantFamily: FamilyRHEL,
		},
		{
			name: "amazon linux",
			content: `NAME="Amazon Linux"
ID="amzn"
ID_LIKE="fedora"
VERSION_ID="2023"
`,
			wantID:     "amzn",
			wantFamily: FamilyRHEL,
		},
		{
			name: "unknown derivative with debian parent",
			content: `ID=neon
ID_LIKE="ubuntu debian"
`,
			wantID:     "neon",
			wantFamily: FamilyDebian,
		},
		{
			name: "unsupported distro",
			content: `ID=alpine
ID_LIKE=""
`,
			wantID:     "alpine",
			wantFamily: FamilyUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOSRelease(t, tt.content)
			info, err := DetectFromFile(path)
			if err != nil {
				t.Fatalf("DetectFromFile failed: %v", err)
			}
			if info.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", info.ID, tt.wantID)
			}
			if info.Family != tt.wantFamily {
				t.Errorf("Family = %q, want %q", info.Family, tt.wantFamily)
			}
		})
	}
}

func TestDetectFromFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := DetectFromFile(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("no ID field", func(t *testing.T) {
		path := writeOSRelease(t, "NAME=\"Mystery Linux\"\n")
		_, err := DetectFromFile(path)
		if err == nil {
			t.Error("expected error for os-release without ID")
		}
	})
}

func TestLayout(t *testing.T) {
	debian := &Info{ID: "ubuntu", Family: FamilyDebian}
	layout := debian.Layout()
	if layout.Available != "/etc/nginx/sites-available" {
		t.Errorf("unexpected debian available dir: %s", layout.Available)
	}
	if layout.Enabled != "/etc/nginx/sites-enabled" {
		t.Errorf("unexpected debian enabled dir: %s", layout.Enabled)
	}
	if !layout.Symlink {
		t.Error("debian layout should enable via symlink")
	}

	rhel := &Info{ID: "centos", Family: FamilyRHEL}
	layout = rhel.Layout()
	if layout.Available != "/etc/nginx/conf.d" || layout.Enabled != "/etc/nginx/conf.d" {
		t.Errorf("rhel layout should use conf.d, got %+v", layout)
	}
	if layout.Symlink {
		t.Error("rhel layout should not use symlinks")
	}
}

func TestSupported(t *testing.T) {
	if !(&Info{Family: FamilyDebian}).Supported() {
		t.Error("debian family should be supported")
	}
	if !(&Info{Family: FamilyRHEL}).Supported() {
		t.Error("rhel family should be supported")
	}
	if (&Info{Family: FamilyUnknown}).Supported() {
		t.Error("unknown family should not be supported")
	}
}

func TestPlatform(t *testing.T) {
	p := Platform()
	if p == "" || p == "/" {
		t.Errorf("Platform() returned %q", p)
	}
}
