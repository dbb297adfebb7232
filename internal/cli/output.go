package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case HighScore:
		o.printHighScore(v)
	case GameRecordList:
		o.printGameRecordList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Block response type (matches API)
type Block struct {
	ID    int64 `json:"id"`
	Value int   `json:"value"`
	Row   int   `json:"row"`
	Col   int   `json:"col"`
}

// GameState response type
type GameState struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	Mode         string  `json:"mode,omitempty"`
	Score        int     `json:"score"`
	HighScore    int     `json:"high_score"`
	Target       int     `json:"target"`
	TimeLeft     int     `json:"time_left,omitempty"`
	Blocks       []Block `json:"blocks"`
	Selection    []int64 `json:"selection"`
	SelectionSum int     `json:"selection_sum"`
}

// HighScore response type
type HighScore struct {
	HighScore int `json:"high_score"`
}

// GameRecord response type
type GameRecord struct {
	GameID          string    `json:"game_id"`
	Mode            string    `json:"mode"`
	Score           int       `json:"score"`
	DurationSeconds int       `json:"duration_seconds"`
	EndedAt         time.Time `json:"ended_at"`
}

// GameRecordList response type
type GameRecordList struct {
	Records []GameRecord `json:"records"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Status: %s\n", g.Status)
	if g.Mode != "" {
		fmt.Printf("Mode: %s\n", g.Mode)
	}
	fmt.Printf("Score: %d (high: %d)\n", g.Score, g.HighScore)
	if g.Status == "playing" {
		fmt.Printf("Target: %d\n", g.Target)
	}
	if g.Mode == "time" && g.TimeLeft > 0 {
		fmt.Printf("Time Left: %ds\n", g.TimeLeft)
	}
	if len(g.Selection) > 0 {
		fmt.Printf("Selection: sum %d (%d blocks)\n", g.SelectionSum, len(g.Selection))
	}

	if len(g.Blocks) > 0 {
		fmt.Println()
		o.printTower(g)
	}
}

// printTower renders the grid, with selected blocks bracketed
func (o *Output) printTower(g GameState) {
	width, height := 0, 0
	for _, b := range g.Blocks {
		if b.Col+1 > width {
			width = b.Col + 1
		}
		if b.Row+1 > height {
			height = b.Row + 1
		}
	}
	if width < 6 {
		width = 6
	}
	if height < 10 {
		height = 10
	}

	selected := make(map[int64]bool, len(g.Selection))
	for _, id := range g.Selection {
		selected[id] = true
	}

	type cell struct {
		value    int
		id       int64
		occupied bool
	}
	cells := make([][]cell, height)
	for row := range cells {
		cells[row] = make([]cell, width)
	}
	for _, b := range g.Blocks {
		cells[b.Row][b.Col] = cell{value: b.Value, id: b.ID, occupied: true}
	}

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < width; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	fmt.Print(strings.Repeat("---", width))
	fmt.Println("+")

	// Print rows, top of the tower first
	for row := 0; row < height; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < width; col++ {
			c := cells[row][col]
			switch {
			case !c.occupied:
				fmt.Print(" . ")
			case selected[c.id]:
				fmt.Printf("[%d]", c.value)
			default:
				fmt.Printf(" %d ", c.value)
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	fmt.Print(strings.Repeat("---", width))
	fmt.Println("+")
}

func (o *Output) printHighScore(h HighScore) {
	fmt.Printf("High Score: %d\n", h.HighScore)
}

func (o *Output) printGameRecordList(l GameRecordList) {
	if len(l.Records) == 0 {
		fmt.Println("No records")
		return
	}
	fmt.Printf("Records (%d):\n", len(l.Records))
	for _, r := range l.Records {
		fmt.Printf("  %s  %-7s  %5d pts  %4ds  %s\n",
			r.EndedAt.Format("2006-01-02 15:04"),
			r.Mode,
			r.Score,
			r.DurationSeconds,
			r.GameID,
		)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
