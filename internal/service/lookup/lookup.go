package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/ryoshida/kanjicore/internal/domain"
	"github.com/ryoshida/kanjicore/internal/provider"
	"github.com/ryoshida/kanjicore/internal/transcript"
	"github.com/ryoshida/kanjicore/pkg/ctxutil"
)

// Lookup assembles the page data for a single queried character. The kanji
// and word providers are queried concurrently. A kanji provider failure is
// fatal for the call; word and example failures degrade to fewer results
// (spec'd as "no examples found" territory, not an error).
func (s *Service) Lookup(ctx context.Context, literal string) (*Result, error) {
	if err := validateLiteral(literal); err != nil {
		return nil, err
	}

	ctx, requestID := ctxutil.EnsureRequestID(ctx)
	log := s.log.With(slog.String("request_id", requestID), slog.String("char", literal))

	var (
		kanjiRes   *provider.KanjiResult
		candidates []domain.WordCandidate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		kanjiRes, err = s.kanji.FetchKanji(gctx, literal)
		if err != nil {
			return fmt.Errorf("fetch kanji: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		words, err := s.words.SearchWords(gctx, literal)
		if err != nil {
			// Degrade: a character page without compounds is still a page.
			log.WarnContext(gctx, "word provider error, proceeding without compounds",
				slog.String("error", err.Error()),
			)
			return nil
		}
		candidates = words
		return nil
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "kanji provider error", slog.String("error", err.Error()))
		return nil, err
	}

	if kanjiRes == nil {
		return nil, ErrKanjiNotFound
	}

	anchor := domain.NewAnchorContext(literal, kanjiRes.PrimaryMeaning())
	compounds := s.selector.Select(candidates, anchor)
	examples := s.collectExamples(ctx, log, literal)

	log.InfoContext(ctx, "lookup complete",
		slog.Int("candidates", len(candidates)),
		slog.Int("compounds", len(compounds)),
		slog.Int("examples", len(examples)),
	)

	return &Result{
		Literal:     kanjiRes.Literal,
		Meanings:    kanjiRes.Meanings,
		KunReadings: kanjiRes.KunReadings,
		OnReadings:  kanjiRes.OnReadings,
		Compounds:   compounds,
		Examples:    examples,
	}, nil
}

// collectExamples fetches and segments example sentences. Sentences that
// arrive without a transcription are annotated first when an annotator is
// available, otherwise parsed as plain text.
func (s *Service) collectExamples(ctx context.Context, log *slog.Logger, literal string) []Example {
	if s.examples == nil {
		return nil
	}

	fetched, err := s.examples.FetchExamples(ctx, literal)
	if err != nil {
		log.WarnContext(ctx, "example provider error, proceeding without examples",
			slog.String("error", err.Error()),
		)
		return nil
	}

	examples := make([]Example, 0, s.maxExamples)
	for _, ex := range fetched {
		if len(examples) == s.maxExamples {
			break
		}

		transcription := ex.Transcription
		if transcription == "" {
			if s.annotate != nil {
				transcription = s.annotate.Annotate(ex.Sentence)
			} else {
				transcription = ex.Sentence
			}
		}

		segments := transcript.Parse(transcription)
		if len(segments) == 0 {
			continue
		}
		examples = append(examples, Example{
			Sentence:    ex.Sentence,
			Translation: ex.Translation,
			Segments:    segments,
		})
	}
	return examples
}

// validateLiteral requires exactly one ideograph.
func validateLiteral(literal string) error {
	if literal == "" {
		return domain.NewValidationError("char", "required")
	}
	r, size := utf8.DecodeRuneInString(literal)
	if size != len(literal) || r == utf8.RuneError {
		return domain.NewValidationError("char", "must be a single character")
	}
	if r < 0x4E00 || r > 0x9FFF {
		return domain.NewValidationError("char", "must be an ideograph")
	}
	return nil
}
