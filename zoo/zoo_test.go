package zoo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avolkov/go-life/model"
)

func TestGliderLayout(t *testing.T) {
	want := "+---+\n" +
		"| # |\n" +
		"|  #|\n" +
		"|###|\n" +
		"+---+\n"
	if got := Glider().String(); got != want {
		t.Fatalf("glider = %q, want %q", got, want)
	}
}

func TestRPentominoLayout(t *testing.T) {
	want := "+---+\n" +
		"| ##|\n" +
		"|## |\n" +
		"| # |\n" +
		"+---+\n"
	if got := RPentomino().String(); got != want {
		t.Fatalf("r-pentomino = %q, want %q", got, want)
	}
}

func TestLightWeightSpaceshipLayout(t *testing.T) {
	want := "+-----+\n" +
		"| #  #|\n" +
		"|#    |\n" +
		"|#   #|\n" +
		"|#### |\n" +
		"+-----+\n"
	if got := LightWeightSpaceship().String(); got != want {
		t.Fatalf("lightweight spaceship = %q, want %q", got, want)
	}
}

func TestAsciiRoundTrip(t *testing.T) {
	grid := model.NewGrid(6, 5)
	if err := grid.Merge(Glider(), 1, 1, false); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	_ = grid.Set(5, 4, model.Alive)

	path := filepath.Join(t.TempDir(), "roundtrip.gol")
	if err := SaveAscii(path, grid); err != nil {
		t.Fatalf("SaveAscii failed: %v", err)
	}
	loaded, err := LoadAscii(path)
	if err != nil {
		t.Fatalf("LoadAscii failed: %v", err)
	}
	if !loaded.Equal(grid) {
		t.Fatalf("ascii round trip changed the grid:\n%s\nwant:\n%s", loaded, grid)
	}
}

func TestSaveAsciiExactFormat(t *testing.T) {
	grid := model.NewGrid(2, 2)
	_ = grid.Set(1, 0, model.Alive)

	path := filepath.Join(t.TempDir(), "exact.gol")
	if err := SaveAscii(path, grid); err != nil {
		t.Fatalf("SaveAscii failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if want := "2 2\n #\n  \n"; string(data) != want {
		t.Fatalf("file content = %q, want %q", data, want)
	}
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadAsciiRejectsMalformedFiles(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"illegal character", "3 3\n# #\n##x\n # \n"},
		{"short row", "3 3\n# #\n##\n # \n"},
		{"long row", "3 3\n# #\n####\n # \n"},
		{"missing trailing newline", "2 2\n##\n##"},
		{"zero width", "0 3\n"},
		{"negative height", "3 -1\n"},
		{"non-numeric header", "a b\n##\n##\n"},
		{"truncated rows", "3 3\n# #\n"},
		{"empty file", ""},
	}
	for _, tc := range cases {
		path := writeFile(t, "bad.gol", []byte(tc.content))
		if _, err := LoadAscii(path); !errors.Is(err, ErrFormat) {
			t.Fatalf("%s: error = %v, want ErrFormat", tc.name, err)
		}
	}
}

func TestLoadAsciiMissingFile(t *testing.T) {
	if _, err := LoadAscii(filepath.Join(t.TempDir(), "nope.gol")); !errors.Is(err, ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, grid := range []*model.Grid{
		Glider(),
		RPentomino(),
		LightWeightSpaceship(),
		model.NewGrid(8, 1),
		model.NewGrid(0, 0),
	} {
		path := filepath.Join(t.TempDir(), "roundtrip.bgol")
		if err := SaveBinary(path, grid); err != nil {
			t.Fatalf("SaveBinary failed: %v", err)
		}
		loaded, err := LoadBinary(path)
		if err != nil {
			t.Fatalf("LoadBinary failed: %v", err)
		}
		if !loaded.Equal(grid) {
			t.Fatalf("binary round trip changed a %dx%d grid", grid.GetWidth(), grid.GetHeight())
		}
	}
}

func TestSaveBinaryExactLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.bgol")
	if err := SaveBinary(path, Glider()); err != nil {
		t.Fatalf("SaveBinary failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	// 3x3 glider: alive at flat indexes 1, 5, 6, 7, 8 packed LSB-first
	want := []byte{3, 0, 0, 0, 3, 0, 0, 0, 0xe2, 0x01}
	if len(data) != len(want) {
		t.Fatalf("file is %d bytes, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, data[i], want[i])
		}
	}
}

func TestLoadBinaryRejectsMalformedFiles(t *testing.T) {
	cases := []struct {
		name    string
		content []byte
	}{
		{"empty file", nil},
		{"short header", []byte{4, 0, 0}},
		{"truncated body", []byte{4, 0, 0, 0, 4, 0, 0, 0, 0xff}},
		{"negative width", []byte{0xff, 0xff, 0xff, 0xff, 1, 0, 0, 0}},
	}
	for _, tc := range cases {
		path := writeFile(t, "bad.bgol", tc.content)
		if _, err := LoadBinary(path); !errors.Is(err, ErrFormat) {
			t.Fatalf("%s: error = %v, want ErrFormat", tc.name, err)
		}
	}
}

func TestLoadBinaryMissingFile(t *testing.T) {
	if _, err := LoadBinary(filepath.Join(t.TempDir(), "nope.bgol")); !errors.Is(err, ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}
}

func TestBinaryPaddingBitsIgnored(t *testing.T) {
	// 3x3 all dead but with garbage in the padding bits past index 8
	content := []byte{3, 0, 0, 0, 3, 0, 0, 0, 0x00, 0xfe}
	path := writeFile(t, "padded.bgol", content)
	grid, err := LoadBinary(path)
	if err != nil {
		t.Fatalf("LoadBinary failed: %v", err)
	}
	if grid.GetAliveCells() != 0 {
		t.Fatalf("padding bits leaked into the grid, %d alive", grid.GetAliveCells())
	}
}
