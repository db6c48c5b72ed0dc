package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Domenick1991/showbooking/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Seed is the initial catalog content. It is consumed once by NewStore.
type Seed struct {
	Movies []MovieRecord `yaml:"movies" validate:"dive"`
	Shows  []ShowRecord  `yaml:"shows" validate:"dive"`
}

type MovieRecord struct {
	ID              string   `yaml:"movie_id" validate:"required"`
	Title           string   `yaml:"title" validate:"required"`
	Genre           string   `yaml:"genre"`
	DurationMinutes int      `yaml:"duration_minutes" validate:"gte=0"`
	Language        string   `yaml:"language"`
	Description     string   `yaml:"description"`
	Cast            []string `yaml:"cast"`
}

type ShowRecord struct {
	ID          string          `yaml:"show_id" validate:"required"`
	MovieID     string          `yaml:"movie_id" validate:"required"`
	Theater     string          `yaml:"theater" validate:"required"`
	Date        string          `yaml:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string          `yaml:"start_time" validate:"required,datetime=15:04"`
	TicketPrice decimal.Decimal `yaml:"ticket_price" validate:"-"`
	TotalSeats  int             `yaml:"total_seats" validate:"gt=0"`
	BookedSeats []int           `yaml:"booked_seats" validate:"unique"`
}

// DefaultSeed returns the catalog shipped with the binary.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &seed, nil
}

// Validate checks field formats and the cross-record rules a store relies on.
func (s *Seed) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil seed", domain.ErrInvalidRequest)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}

	movies := make(map[string]struct{}, len(s.Movies))
	for _, m := range s.Movies {
		if _, dup := movies[m.ID]; dup {
			return fmt.Errorf("invalid seed: duplicate movie %s", m.ID)
		}
		movies[m.ID] = struct{}{}
	}

	shows := make(map[string]struct{}, len(s.Shows))
	for _, sh := range s.Shows {
		if _, dup := shows[sh.ID]; dup {
			return fmt.Errorf("invalid seed: duplicate show %s", sh.ID)
		}
		shows[sh.ID] = struct{}{}

		if _, ok := movies[sh.MovieID]; !ok {
			return fmt.Errorf("invalid seed: show %s references unknown movie %s", sh.ID, sh.MovieID)
		}
		if !sh.TicketPrice.IsPositive() {
			return fmt.Errorf("invalid seed: show %s: ticket price must be positive", sh.ID)
		}
		for _, seat := range sh.BookedSeats {
			if seat < 1 || seat > sh.TotalSeats {
				return fmt.Errorf("invalid seed: show %s: booked seat %d outside 1..%d", sh.ID, seat, sh.TotalSeats)
			}
		}
	}
	if len(s.Movies) == 0 {
		return errors.New("invalid seed: no movies")
	}
	return nil
}
