package board

import (
	"errors"
	"image"
	"testing"
)

func TestLocateWordBoxes_Board(t *testing.T) {
	img, g, b := newBoard(true)

	grid, err := LocateTileGrid(img, testParams(), nil)
	if err != nil {
		t.Fatalf("LocateTileGrid failed: %v", err)
	}
	if grid.Bottom() != g.bottom() {
		t.Fatalf("grid bottom: got %d, want %d", grid.Bottom(), g.bottom())
	}

	wb, err := LocateWordBoxes(img, grid, testParams(), nil)
	if err != nil {
		t.Fatalf("LocateWordBoxes failed: %v", err)
	}

	if wb.RowStart != b.top {
		t.Errorf("RowStart: got %d, want %d", wb.RowStart, b.top)
	}
	if wb.MeasureRow != b.top+10 {
		t.Errorf("MeasureRow: got %d, want %d", wb.MeasureRow, b.top+10)
	}
	if wb.Border != 2 || wb.Inside != 16 || wb.Gap != 3 || wb.Total != 20 {
		t.Errorf("geometry: got border %d inside %d gap %d total %d, want 2/16/3/20",
			wb.Border, wb.Inside, wb.Gap, wb.Total)
	}
}

func TestLocateWordBoxes_TotalInvariant(t *testing.T) {
	tests := []struct {
		name          string
		total, border int
		gap           int
		left          int
	}{
		{"thin border", 24, 1, 2, 0},
		{"thick border", 30, 5, 6, 4},
		{"wide gap", 16, 2, 12, 9},
		{"single pixel gap", 18, 3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boxSpec{
				total: tt.total, border: tt.border, gap: tt.gap, wordGap: tt.gap + 1,
				left: tt.left, top: 4, rowPitch: tt.total + DefaultBoxRowSpacing,
				rows: [][]int{{2, 1}},
			}
			img := newBackground(200, 50)
			b.draw(img)

			wb, err := LocateWordBoxes(img, TileGrid{}, testParams(), nil)
			if err != nil {
				t.Fatalf("LocateWordBoxes failed: %v", err)
			}
			if wb.Total != wb.Inside+2*wb.Border {
				t.Errorf("Total %d != Inside %d + 2*Border %d", wb.Total, wb.Inside, wb.Border)
			}
			if wb.Total != tt.total || wb.Border != tt.border || wb.Gap != tt.gap {
				t.Errorf("geometry: got total %d border %d gap %d, want %d/%d/%d",
					wb.Total, wb.Border, wb.Gap, tt.total, tt.border, tt.gap)
			}
		})
	}
}

func TestLocateWordBoxes_SearchStartsBelowGrid(t *testing.T) {
	img := newBackground(100, 80)
	// Non-background above the search start must be ignored
	fill(img, image.Rect(10, 10, 90, 50), borderColor)
	b := boxSpec{total: 16, border: 2, gap: 2, wordGap: 3, left: 0, top: 60, rowPitch: 23, rows: [][]int{{1}}}
	b.draw(img)

	wb, err := LocateWordBoxes(img, TileGrid{OriginY: 55}, testParams(), nil)
	if err != nil {
		t.Fatalf("LocateWordBoxes failed: %v", err)
	}
	if wb.RowStart != 60 {
		t.Errorf("RowStart: got %d, want 60", wb.RowStart)
	}
}

func TestLocateWordBoxes_AllBackground(t *testing.T) {
	layout := gridSpec{n: 2, s: 20, pad: 4, top: 2}
	img := newBackground(layout.width(), layout.bottom()+40)
	layout.draw(img, false)

	grid, err := LocateTileGrid(img, testParams(), nil)
	if err != nil {
		t.Fatalf("LocateTileGrid failed: %v", err)
	}

	_, err = LocateWordBoxes(img, grid, testParams(), nil)
	if !errors.Is(err, ErrBoxRegionNotFound) {
		t.Errorf("expected ErrBoxRegionNotFound, got %v", err)
	}
}

func TestLocateWordBoxes_GridAtImageBottom(t *testing.T) {
	layout := gridSpec{n: 2, s: 20, pad: 4, top: 0}
	img := newBackground(layout.width(), layout.bottom())
	layout.draw(img, false)

	grid, err := LocateTileGrid(img, testParams(), nil)
	if err != nil {
		t.Fatalf("LocateTileGrid failed: %v", err)
	}

	_, err = LocateWordBoxes(img, grid, testParams(), nil)
	if !errors.Is(err, ErrBoxRegionNotFound) {
		t.Errorf("expected ErrBoxRegionNotFound, got %v", err)
	}
}

func TestLocateWordBoxes_MeasureRowPastImage(t *testing.T) {
	img := newBackground(60, 30)
	b := boxSpec{total: 12, border: 2, gap: 2, wordGap: 3, left: 0, top: 25, rowPitch: 19, rows: [][]int{{2}}}
	b.draw(img)

	_, err := LocateWordBoxes(img, TileGrid{}, testParams(), nil)
	if !errors.Is(err, ErrBoxRegionNotFound) {
		t.Errorf("expected ErrBoxRegionNotFound, got %v", err)
	}
}
