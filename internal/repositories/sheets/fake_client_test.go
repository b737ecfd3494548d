package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// memClient is an in-memory Client. Row 0 of each sheet is spreadsheet row 1.
type memClient struct {
	mu      sync.Mutex
	sheets  map[string][][]interface{}
	order   []string
	updates []string
	batches int
}

func newMemClient() *memClient {
	return &memClient{sheets: make(map[string][][]interface{})}
}

var _ Client = (*memClient)(nil)

var cellPattern = regexp.MustCompile(`^([A-Z]+)(\d*)$`)

type a1Range struct {
	sheet    string
	startCol int // 0-based
	startRow int // 1-based, 0 when open
	endRow   int // 1-based, 0 when open
}

func parseRange(rng string) (a1Range, error) {
	parts := strings.SplitN(rng, "!", 2)
	if len(parts) != 2 {
		return a1Range{}, fmt.Errorf("bad range %q", rng)
	}
	out := a1Range{sheet: parts[0]}
	cells := strings.SplitN(parts[1], ":", 2)

	m := cellPattern.FindStringSubmatch(cells[0])
	if m == nil {
		return a1Range{}, fmt.Errorf("bad cell %q", cells[0])
	}
	out.startCol = int(m[1][0] - 'A')
	if m[2] != "" {
		out.startRow, _ = strconv.Atoi(m[2])
		out.endRow = out.startRow
	}
	if len(cells) == 2 {
		end := cellPattern.FindStringSubmatch(cells[1])
		if end == nil {
			return a1Range{}, fmt.Errorf("bad cell %q", cells[1])
		}
		out.endRow = 0
		if end[2] != "" {
			out.endRow, _ = strconv.Atoi(end[2])
		}
	}
	return out, nil
}

func (c *memClient) GetValues(_ context.Context, rng string) ([][]interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := parseRange(rng)
	if err != nil {
		return nil, err
	}
	rows, ok := c.sheets[r.sheet]
	if !ok {
		return nil, fmt.Errorf("unable to parse range: %s", rng)
	}
	start := 1
	if r.startRow > 0 {
		start = r.startRow
	}
	end := len(rows)
	if r.endRow > 0 && r.endRow < end {
		end = r.endRow
	}
	out := make([][]interface{}, 0)
	for i := start - 1; i < end; i++ {
		out = append(out, append([]interface{}(nil), rows[i]...))
	}
	return out, nil
}

func (c *memClient) AppendRows(_ context.Context, rng string, rows [][]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := parseRange(rng)
	if err != nil {
		return err
	}
	if _, ok := c.sheets[r.sheet]; !ok {
		return fmt.Errorf("unable to parse range: %s", rng)
	}
	for _, row := range rows {
		c.sheets[r.sheet] = append(c.sheets[r.sheet], append([]interface{}(nil), row...))
	}
	return nil
}

func (c *memClient) UpdateRange(_ context.Context, rng string, rows [][]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := parseRange(rng)
	if err != nil {
		return err
	}
	sheet, ok := c.sheets[r.sheet]
	if !ok {
		return fmt.Errorf("unable to parse range: %s", rng)
	}
	start := r.startRow
	if start == 0 {
		start = 1
	}
	for k, row := range rows {
		idx := start - 1 + k
		for len(sheet) <= idx {
			sheet = append(sheet, []interface{}{})
		}
		target := sheet[idx]
		for len(target) < r.startCol+len(row) {
			target = append(target, "")
		}
		copy(target[r.startCol:], row)
		sheet[idx] = target
	}
	c.sheets[r.sheet] = sheet
	c.updates = append(c.updates, rng)
	return nil
}

func (c *memClient) BatchUpdate(ctx context.Context, updates []RangeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	for _, u := range updates {
		if err := c.UpdateRange(ctx, u.Range, u.Rows); err != nil {
			return err
		}
	}
	c.mu.Lock()
	c.batches++
	c.mu.Unlock()
	return nil
}

func (c *memClient) SheetTitles(context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...), nil
}

func (c *memClient) AddSheet(_ context.Context, title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sheets[title]; ok {
		return fmt.Errorf("sheet %s already exists", title)
	}
	c.sheets[title] = [][]interface{}{}
	c.order = append(c.order, title)
	return nil
}

// rawRows returns the stored rows of a sheet including the header.
func (c *memClient) rawRows(sheet string) [][]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sheets[sheet]
}
