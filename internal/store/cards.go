package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"context"

	"gopkg.in/yaml.v3"

	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/models"
)

type fileCardRepository struct {
	path   string
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] backed by the YAML file at
// path. The file is created lazily on the first Append.
func NewCardRepository(path string, logger *logger.Logger) CardRepository {
	return &fileCardRepository{path: path, logger: logger}
}

// cardRecord mirrors models.Card with pointer fields so that a missing
// required key is distinguishable from a zero value after decoding.
// Unknown keys are ignored by the YAML decoder, which keeps the reader
// forward-compatible with files written by newer versions.
type cardRecord struct {
	ID           *int64     `yaml:"id"`
	Front        *string    `yaml:"front"`
	Back         *string    `yaml:"back"`
	CreatedAt    *time.Time `yaml:"created_at"`
	LanguagePair *string    `yaml:"language_pair"`
}

func (r cardRecord) toCard() (models.Card, error) {
	switch {
	case r.ID == nil:
		return models.Card{}, errors.New("missing required key \"id\"")
	case r.Front == nil:
		return models.Card{}, errors.New("missing required key \"front\"")
	case r.Back == nil:
		return models.Card{}, errors.New("missing required key \"back\"")
	case r.CreatedAt == nil:
		return models.Card{}, errors.New("missing required key \"created_at\"")
	case r.LanguagePair == nil:
		return models.Card{}, errors.New("missing required key \"language_pair\"")
	}

	pair, err := models.ParseLanguagePair(*r.LanguagePair)
	if err != nil {
		return models.Card{}, err
	}

	return models.Card{
		ID:           *r.ID,
		Front:        *r.Front,
		Back:         *r.Back,
		CreatedAt:    *r.CreatedAt,
		LanguagePair: pair,
	}, nil
}

func (f *fileCardRepository) Load(ctx context.Context) ([]models.Card, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Card{}, nil
		}
		return nil, fmt.Errorf("read card file: %w", err)
	}

	var records []cardRecord
	if err = yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}

	cards := make([]models.Card, 0, len(records))
	for i, record := range records {
		card, err := record.toCard()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrStoreCorrupt, i, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func (f *fileCardRepository) Append(ctx context.Context, front, back string, pair models.LanguagePair) (models.Card, error) {
	if front == "" || back == "" {
		return models.Card{}, ErrEmptyCardSide
	}

	// Re-read on every append so externally edited files feed into the
	// next-id computation.
	cards, err := f.Load(ctx)
	if err != nil {
		return models.Card{}, err
	}

	var maxID int64
	for _, card := range cards {
		if card.ID > maxID {
			maxID = card.ID
		}
	}

	newCard := models.Card{
		ID:           maxID + 1,
		Front:        front,
		Back:         back,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		LanguagePair: pair,
	}
	cards = append(cards, newCard)

	if err = f.writeAtomically(cards); err != nil {
		return models.Card{}, err
	}

	f.logger.Debug().
		Int64("card_id", newCard.ID).
		Str("language_pair", pair.String()).
		Msg("card appended")

	return newCard, nil
}

func (f *fileCardRepository) ListAll(ctx context.Context) ([]models.Card, error) {
	return f.Load(ctx)
}

// writeAtomically serialises cards into a temp file in the target directory
// and renames it over the card file, so a crash between the two steps leaves
// the previous file intact.
func (f *fileCardRepository) writeAtomically(cards []models.Card) error {
	data, err := yaml.Marshal(cards)
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp card file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp card file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync temp card file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp card file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace card file: %w", err)
	}

	return nil
}
