package game

import "github.com/vovakirdan/tui-frogger/internal/core"

// Tile is what one board cell shows.
type Tile uint8

const (
	TileBank Tile = iota
	TileRoad
	TileVehicle
	TileMedian
	TileWater
	TileLog
	TileWall
	TileSlot
	TileHome
	TileFrog
	TileDeadFrog
)

// CellWidth is how many screen columns one board cell takes.
const CellWidth = 2

var tileGlyphs = [...]struct {
	glyph string
	color core.Color
}{
	TileBank:     {"░░", core.ColorGreen},
	TileRoad:     {"  ", core.ColorDefault},
	TileVehicle:  {"██", core.ColorRed},
	TileMedian:   {"▒▒", core.ColorMagenta},
	TileWater:    {"~~", core.ColorBlue},
	TileLog:      {"▓▓", core.ColorBrown},
	TileWall:     {"██", core.ColorGreen},
	TileSlot:     {"  ", core.ColorDefault},
	TileHome:     {"◆◆", core.ColorBrightGreen},
	TileFrog:     {"◆◆", core.ColorBrightGreen},
	TileDeadFrog: {"✖✖", core.ColorBrightRed},
}

// TileAt returns the tile at board cell x, y (row 0 is the start bank).
func (b *Board) TileAt(x, y int) Tile {
	if x == b.frog.X && y == b.frog.Y && !b.home {
		if b.dead {
			return TileDeadFrog
		}
		return TileFrog
	}
	switch {
	case y == StartRow:
		return TileBank
	case y == MedianRow:
		return TileMedian
	case y == BankRow:
		switch {
		case b.filled[x]:
			return TileHome
		case b.slots[x]:
			return TileSlot
		default:
			return TileWall
		}
	case isRiver(y):
		if b.lanes[y][x] {
			return TileLog
		}
		return TileWater
	default:
		if b.lanes[y][x] {
			return TileVehicle
		}
		return TileRoad
	}
}

// Tiles is a copy of every board cell, indexed [row][column].
type Tiles [Height][Width]Tile

// Tiles copies the board for rendering outside the game loop.
func (b *Board) Tiles() Tiles {
	var t Tiles
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			t[y][x] = b.TileAt(x, y)
		}
	}
	return t
}

// Render draws the board with its top-left corner at ox, oy.
func (b *Board) Render(dst *core.Screen, ox, oy int) {
	b.Tiles().Render(dst, ox, oy)
}

// Render draws the tiles with the riverbank at the top.
func (t Tiles) Render(dst *core.Screen, ox, oy int) {
	for y := 0; y < Height; y++ {
		sy := oy + (Height - 1 - y)
		for x := 0; x < Width; x++ {
			g := tileGlyphs[t[y][x]]
			dst.DrawTextColor(ox+x*CellWidth, sy, g.glyph, g.color)
		}
	}
}
