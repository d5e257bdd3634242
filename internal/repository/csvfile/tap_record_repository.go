package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
	"github.com/transit-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

// timestampLayouts are tried in order; all are parsed as UTC wall time.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// requiredColumns must all be present in the header; gocsv alone would leave
// the fields of a missing column blank.
var requiredColumns = []string{
	"tapInTime",
	"tapOutTime",
	"corridorName",
	"payCardBank",
	"payCardSex",
	"tapInStopsLat",
	"tapInStopsLon",
	"tapOutStopsLat",
	"tapOutStopsLon",
}

// tapRecordCSV mirrors the dataset header. Unlisted columns are ignored.
type tapRecordCSV struct {
	TapInTime      string `csv:"tapInTime"`
	TapOutTime     string `csv:"tapOutTime"`
	CorridorName   string `csv:"corridorName"`
	PayCardBank    string `csv:"payCardBank"`
	PayCardSex     string `csv:"payCardSex"`
	TapInStopsLat  string `csv:"tapInStopsLat"`
	TapInStopsLon  string `csv:"tapInStopsLon"`
	TapOutStopsLat string `csv:"tapOutStopsLat"`
	TapOutStopsLon string `csv:"tapOutStopsLon"`
}

type tapRecordRepository struct {
	path   string
	logger *zap.Logger
}

// NewTapRecordRepository reads tap records from the CSV file at path.
func NewTapRecordRepository(path string, logger *zap.Logger) repository.TapRecordRepository {
	return &tapRecordRepository{
		path:   path,
		logger: logger,
	}
}

func (r *tapRecordRepository) Source() string {
	return "csv:" + r.path
}

func (r *tapRecordRepository) LoadAll(ctx context.Context) ([]domain.TapRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", r.path, err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 1<<20)
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read dataset %s header: %w", r.path, err)
	}
	header = strings.TrimPrefix(header, "\ufeff")
	if err := checkHeader(header); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", r.path, err)
	}

	var rows []*tapRecordCSV
	if err := gocsv.Unmarshal(io.MultiReader(strings.NewReader(header), br), &rows); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", r.path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]domain.TapRecord, 0, len(rows))
	badCoords := 0
	for i, row := range rows {
		rec, bad, err := convertRow(row)
		if err != nil {
			// line 1 is the header
			return nil, fmt.Errorf("dataset %s line %d: %w", r.path, i+2, err)
		}
		badCoords += bad
		records = append(records, rec)
	}

	if badCoords > 0 {
		r.logger.Warn("Invalid coordinates treated as missing",
			zap.String("path", r.path),
			zap.Int("values", badCoords),
		)
	}

	r.logger.Debug("Dataset decoded",
		zap.String("path", r.path),
		zap.Int("rows", len(records)),
	)

	return records, nil
}

func convertRow(row *tapRecordCSV) (domain.TapRecord, int, error) {
	tapIn, err := ParseTimestamp(row.TapInTime)
	if err != nil {
		return domain.TapRecord{}, 0, fmt.Errorf("tapInTime: %w", err)
	}

	rec := domain.TapRecord{
		TapInTime:    tapIn,
		CorridorName: strings.TrimSpace(row.CorridorName),
		PayCardBank:  strings.TrimSpace(row.PayCardBank),
		PayCardSex:   strings.TrimSpace(row.PayCardSex),
	}

	if strings.TrimSpace(row.TapOutTime) != "" {
		tapOut, err := ParseTimestamp(row.TapOutTime)
		if err != nil {
			return domain.TapRecord{}, 0, fmt.Errorf("tapOutTime: %w", err)
		}
		rec.TapOutTime = &tapOut
	}

	var badIn, badOut int
	rec.TapInStopsLat, rec.TapInStopsLon, badIn = parsePoint(row.TapInStopsLat, row.TapInStopsLon)
	rec.TapOutStopsLat, rec.TapOutStopsLon, badOut = parsePoint(row.TapOutStopsLat, row.TapOutStopsLon)

	return domain.NewTapRecord(rec), badIn + badOut, nil
}

// checkHeader reports every required column missing from the header line.
func checkHeader(line string) error {
	fields, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty file, header expected")
		}
		return fmt.Errorf("parse header: %w", err)
	}

	present := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		present[strings.TrimSpace(f)] = struct{}{}
	}

	var errs []error
	for _, col := range requiredColumns {
		if _, ok := present[col]; !ok {
			errs = append(errs, fmt.Errorf("missing column %q", col))
		}
	}
	return errors.Join(errs...)
}

// parsePoint parses one stop's coordinates. A value that is not a number, or
// a pair outside WGS84 ranges, is dropped and counted as bad.
func parsePoint(latStr, lonStr string) (*float64, *float64, int) {
	bad := 0
	lat, ok := parseCoordinate(latStr)
	if !ok {
		bad++
	}
	lon, ok := parseCoordinate(lonStr)
	if !ok {
		bad++
	}
	if lat != nil && lon != nil && !utils.ValidateCoordinates(*lat, *lon) {
		return nil, nil, bad + 2
	}
	return lat, lon, bad
}

// ParseTimestamp accepts the dataset's date-time formats.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// parseCoordinate returns nil for blank or NaN values; ok is false only when
// a non-blank value could not be parsed.
func parseCoordinate(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
