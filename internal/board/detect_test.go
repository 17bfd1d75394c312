package board

import (
	"bytes"
	"errors"
	"image"
	"slices"
	"sync"
	"testing"
)

func TestDetect_Board(t *testing.T) {
	img, g, _ := newBoard(true)

	props, err := Detect(img, testParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if props.TilesPerRow() != g.n {
		t.Errorf("TilesPerRow: got %d, want %d", props.TilesPerRow(), g.n)
	}
	if props.TileSize() != g.s {
		t.Errorf("TileSize: got %d, want %d", props.TileSize(), g.s)
	}
	if props.TotalTiles() != g.n*g.n {
		t.Errorf("TotalTiles: got %d, want %d", props.TotalTiles(), g.n*g.n)
	}
	if !slices.Equal(props.Boxes(), []int{3, 2, 4}) {
		t.Errorf("Boxes: got %v, want [3 2 4]", props.Boxes())
	}

	side := g.n * (g.s - g.pad)
	if b := props.Letters().Bounds(); b.Dx() != side || b.Dy() != side {
		t.Errorf("letters image: got %v, want %dx%d", b, side, side)
	}
	if props.Annotated().Bounds().Size() != img.Bounds().Size() {
		t.Errorf("annotated image: got %v, want %v", props.Annotated().Bounds(), img.Bounds())
	}
	if wb := props.WordBoxes(); wb.Total != wb.Inside+2*wb.Border {
		t.Errorf("Total %d != Inside %d + 2*Border %d", wb.Total, wb.Inside, wb.Border)
	}
}

func TestDetect_DoesNotModifySource(t *testing.T) {
	img, _, _ := newBoard(true)
	before := bytes.Clone(img.Pix)

	props, err := Detect(img, testParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if !bytes.Equal(before, img.Pix) {
		t.Error("Detect modified the source image")
	}
	annotated, ok := props.Annotated().(*image.NRGBA)
	if !ok {
		t.Fatalf("annotated image type: got %T, want *image.NRGBA", props.Annotated())
	}
	if bytes.Equal(annotated.Pix, img.Pix) {
		t.Error("annotated image carries no diagnostic marks")
	}
}

func TestDetect_Concurrent(t *testing.T) {
	img, _, _ := newBoard(true)
	want, err := Detect(img, testParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Detect(img, testParams())
			if err != nil {
				errs <- err
				return
			}
			if got.Grid() != want.Grid() || !slices.Equal(got.Boxes(), want.Boxes()) {
				errs <- errors.New("concurrent Detect produced a different result")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestDetect_AllBackground(t *testing.T) {
	img := newBackground(80, 80)

	_, err := Detect(img, testParams())
	if !errors.Is(err, ErrTileColorNotFound) {
		t.Fatalf("expected ErrTileColorNotFound, got %v", err)
	}

	var de *DetectError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DetectError, got %T", err)
	}
	if de.Annotated == nil {
		t.Error("DetectError should carry the annotated image")
	}
	if de.Letters != nil {
		t.Error("DetectError should not carry letters before the grid is found")
	}
}

func TestDetect_NoBoxes(t *testing.T) {
	layout := gridSpec{n: 3, s: 30, pad: 6, top: 4}
	img := newBackground(layout.width(), layout.bottom()+60)
	layout.draw(img, true)

	_, err := Detect(img, testParams())
	if !errors.Is(err, ErrBoxRegionNotFound) {
		t.Fatalf("expected ErrBoxRegionNotFound, got %v", err)
	}

	var de *DetectError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DetectError, got %T", err)
	}
	if de.Letters == nil || de.Annotated == nil {
		t.Error("DetectError should carry both letters and annotated images")
	}
}

func TestDetect_InvalidParams(t *testing.T) {
	img, _, _ := newBoard(false)
	p := testParams()
	p.BoxRowSpacing = -1

	if _, err := Detect(img, p); err == nil {
		t.Error("Detect should reject negative row spacing")
	}
}

func TestDetect_DefaultOffsetWithLargeBoxes(t *testing.T) {
	g := gridSpec{n: 2, s: 40, pad: 8, top: 6}
	b := boxSpec{
		total: 30, border: 3, gap: 4, wordGap: 9,
		left: 2, top: g.bottom() + 12, rowPitch: 30 + DefaultBoxRowSpacing,
		rows: [][]int{{2}, {1}},
	}
	img := newBackground(g.width(), b.top+2*b.rowPitch+4)
	g.draw(img, true)
	b.draw(img)

	p := testParams()
	p.BoxRowOffset = DefaultBoxRowOffset

	props, err := Detect(img, p)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if !slices.Equal(props.Boxes(), []int{2, 1}) {
		t.Errorf("Boxes: got %v, want [2 1]", props.Boxes())
	}
	if wb := props.WordBoxes(); wb.MeasureRow != b.top+DefaultBoxRowOffset {
		t.Errorf("MeasureRow: got %d, want %d", wb.MeasureRow, b.top+DefaultBoxRowOffset)
	}
}
