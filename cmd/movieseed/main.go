package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"theater/pkg/config"
	"theater/postgres"

	"gorm.io/gorm"
)

// csv header names, as published in the IMDB movies dataset
var requiredColumns = []string{
	"names", "date_x", "score", "genre", "overview", "crew",
	"orig_title", "status", "orig_lang", "budget_x", "revenue", "country",
}

func main() {
	var (
		csvPath string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "imdb_movies.csv", "Path to the movies csv file")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(csvPath, limit); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(csvPath string, limit int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return fmt.Errorf("cannot open postgres connection: %w", err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			slog.Error("cannot close postgres connection", "error", err)
		}
	}()

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("cannot open csv %s: %w", csvPath, err)
	}
	defer file.Close()

	count, err := importMovies(context.Background(), db, file, limit)
	if err != nil {
		return fmt.Errorf("import movies: %w", err)
	}

	slog.Info("import completed", "rows", count)
	return nil
}

func importMovies(ctx context.Context, db *gorm.DB, r io.Reader, limit int) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	columns, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for limit <= 0 || count < limit {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}

			model, ok := parseMovieRecord(record, columns)
			if !ok {
				continue
			}
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns in csv header: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func parseMovieRecord(record []string, columns map[string]int) (postgres.MovieModel, bool) {
	field := func(name string) (string, bool) {
		i := columns[name]
		if i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var values [12]string
	for i, name := range requiredColumns {
		v, ok := field(name)
		if !ok {
			return postgres.MovieModel{}, false
		}
		values[i] = v
	}
	if values[0] == "" {
		return postgres.MovieModel{}, false
	}

	score, err := parseFloat(values[2])
	if err != nil {
		return postgres.MovieModel{}, false
	}
	budget, err := parseFloat(values[9])
	if err != nil {
		return postgres.MovieModel{}, false
	}
	revenue, err := parseFloat(values[10])
	if err != nil {
		return postgres.MovieModel{}, false
	}

	return postgres.MovieModel{
		Name:      values[0],
		Date:      values[1],
		Score:     score,
		Genre:     values[3],
		Overview:  values[4],
		Crew:      values[5],
		OrigTitle: values[6],
		Status:    values[7],
		OrigLang:  values[8],
		Budget:    budget,
		Revenue:   revenue,
		Country:   values[11],
	}, true
}

// parseFloat treats an empty cell as zero.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
