package render

import (
	"context"
	"errors"
	"testing"

	taskerrors "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
)

func withMissingConverter(t *testing.T) {
	t.Helper()
	orig := lookPath
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() { lookPath = orig })
}

func TestConvertWithoutConverter(t *testing.T) {
	withMissingConverter(t)

	if Available() {
		t.Error("Available() = true, want false")
	}

	ctx := context.Background()
	if _, err := ToPDF(ctx, []byte("<svg/>")); !taskerrors.Is(err, taskerrors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %s", err, taskerrors.ErrCodeUnsupported)
	}
	if _, err := ToPNG(ctx, []byte("<svg/>"), 0); !taskerrors.Is(err, taskerrors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want %s", err, taskerrors.ErrCodeUnsupported)
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	out, err := ToPNG(context.Background(), svg, 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if len(out) < 8 || string(out[1:4]) != "PNG" {
		t.Errorf("ToPNG() output is not a PNG")
	}
}
