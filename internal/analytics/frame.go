package analytics

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const tallyColumn = "tally"

// keyColumn is one integer grouping column.
type keyColumn struct {
	name   string
	values []int
}

// groupCount is one group: key values in keyColumn order and its row count.
type groupCount struct {
	key   []int
	count int
}

// codebook dictionary-encodes strings in first-appearance order.
type codebook struct {
	index  map[string]int
	values []string
}

func newCodebook() *codebook {
	return &codebook{index: make(map[string]int)}
}

func (c *codebook) code(s string) int {
	if i, ok := c.index[s]; ok {
		return i
	}
	i := len(c.values)
	c.index[s] = i
	c.values = append(c.values, s)
	return i
}

func (c *codebook) value(code int) string {
	return c.values[code]
}

// countBy groups n rows by the key columns and counts rows per group.
// Groups come back unordered; callers sort.
func countBy(n int, keys ...keyColumn) ([]groupCount, error) {
	if n == 0 {
		return nil, nil
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("countBy: no key columns")
	}

	cols := make([]series.Series, 0, len(keys)+1)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if len(k.values) != n {
			return nil, fmt.Errorf("countBy: column %s has %d values, want %d", k.name, len(k.values), n)
		}
		cols = append(cols, series.New(k.values, series.Int, k.name))
		names = append(names, k.name)
	}
	cols = append(cols, series.New(make([]int, n), series.Int, tallyColumn))

	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, fmt.Errorf("build frame: %w", df.Err)
	}

	agg := df.GroupBy(names...).Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT},
		[]string{tallyColumn},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("aggregate %v: %w", names, agg.Err)
	}

	countCol, err := aggregateColumn(agg.Names(), names)
	if err != nil {
		return nil, err
	}
	counts := agg.Col(countCol).Float()

	keyValues := make([][]int, len(names))
	for i, name := range names {
		vals, err := agg.Col(name).Int()
		if err != nil {
			return nil, fmt.Errorf("read key %s: %w", name, err)
		}
		keyValues[i] = vals
	}

	rows := agg.Nrow()
	if len(counts) != rows {
		return nil, fmt.Errorf("aggregate %v: %d counts for %d groups", names, len(counts), rows)
	}

	out := make([]groupCount, rows)
	for row := 0; row < rows; row++ {
		key := make([]int, len(names))
		for i := range names {
			key[i] = keyValues[i][row]
		}
		out[row] = groupCount{key: key, count: int(counts[row])}
	}
	return out, nil
}

// aggregateColumn finds the single non-key column of an aggregation result.
func aggregateColumn(all, keys []string) (string, error) {
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}
	for _, name := range all {
		if !isKey[name] {
			return name, nil
		}
	}
	return "", fmt.Errorf("aggregation result has no count column: %v", all)
}
