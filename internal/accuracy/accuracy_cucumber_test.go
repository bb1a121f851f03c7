package accuracy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
)

// TestAccuracyFeatures runs the aggregation feature scenarios.
func TestAccuracyFeatures(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "accuracy.feature")
	suite := godog.TestSuite{
		Name:                "accuracy",
		ScenarioInitializer: initializeAccuracyScenario,
		Options: &godog.Options{
			Format:    "progress",
			Paths:     []string{featurePath},
			Output:    io.Discard,
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// accuracyScenarioState holds scenario state for aggregation features.
type accuracyScenarioState struct {
	items   []ScoredItem
	profile Profile
	report  Report
	err     error
}

func initializeAccuracyScenario(ctx *godog.ScenarioContext) {
	state := &accuracyScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = accuracyScenarioState{}
		return ctx, nil
	})

	ctx.Step(`^the scored items:$`, state.givenScoredItems)
	ctx.Step(`^no scored items$`, state.givenNoItems)
	ctx.Step(`^I aggregate with the "([^"]+)" profile$`, state.whenAggregate)
	ctx.Step(`^the overall accuracy is "([^"]+)" from (\d+) of (\d+)$`, state.thenOverall)
	ctx.Step(`^the "([^"]+)" group "([^"]+)" is (\d+) of (\d+)$`, state.thenGroup)
	ctx.Step(`^aggregation fails on item (\d+) field "([^"]+)"$`, state.thenFails)
	ctx.Step(`^sharding into (\d+) parts gives the same report$`, state.thenShardingMatches)
}

func (s *accuracyScenarioState) givenScoredItems(table *godog.Table) error {
	if len(table.Rows) == 0 {
		return errors.New("table has no header")
	}
	header := table.Rows[0].Cells
	for _, row := range table.Rows[1:] {
		var item ScoredItem
		for i, cell := range row.Cells {
			if err := setItemField(&item, header[i].Value, cell.Value); err != nil {
				return err
			}
		}
		s.items = append(s.items, item)
	}
	return nil
}

func setItemField(item *ScoredItem, field, value string) error {
	switch field {
	case "is_correct":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("is_correct: %w", err)
		}
		item.IsCorrect = parsed
	case "question_type":
		item.QuestionType = value
	case "difficulty":
		item.Difficulty = value
	case "movement_type":
		item.MovementType = value
	case "frame_count":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("frame_count: %w", err)
		}
		item.FrameCount = parsed
	case "split":
		item.Split = value
	default:
		return fmt.Errorf("unknown column %q", field)
	}
	return nil
}

func (s *accuracyScenarioState) givenNoItems() error {
	s.items = nil
	return nil
}

func (s *accuracyScenarioState) whenAggregate(name string) error {
	profile, err := LookupProfile(name)
	if err != nil {
		return err
	}
	s.profile = profile
	s.report, s.err = Aggregate(s.items, profile)
	return nil
}

func (s *accuracyScenarioState) thenOverall(display string, correct, total int) error {
	if s.err != nil {
		return fmt.Errorf("unexpected aggregation error: %w", s.err)
	}
	overall := s.report.Overall()
	if overall != (Tally{Correct: correct, Total: total}) {
		return fmt.Errorf("expected %d/%d, got %v", correct, total, overall)
	}
	if got := overall.Accuracy().Format(2); got != display {
		return fmt.Errorf("expected %s, got %s", display, got)
	}
	return nil
}

func (s *accuracyScenarioState) thenGroup(dimName, value string, correct, total int) error {
	dim, err := ParseDimension(dimName)
	if err != nil {
		return err
	}
	tally, ok := s.report.Tally(GroupKey{Dimension: dim, Value: value})
	if !ok {
		return fmt.Errorf("group %s=%s not found", dim, value)
	}
	if tally != (Tally{Correct: correct, Total: total}) {
		return fmt.Errorf("expected %d/%d, got %v", correct, total, tally)
	}
	return nil
}

func (s *accuracyScenarioState) thenFails(index int, field string) error {
	var validationErr *ValidationError
	if !errors.As(s.err, &validationErr) {
		return fmt.Errorf("expected validation error, got %v", s.err)
	}
	if validationErr.Index != index || validationErr.Field != field {
		return fmt.Errorf("unexpected validation error: %v", validationErr)
	}
	return nil
}

func (s *accuracyScenarioState) thenShardingMatches(shards int) error {
	sharded, err := AggregateSharded(context.Background(), s.items, s.profile, shards)
	if err != nil {
		return err
	}
	if !sharded.Equal(s.report) {
		return errors.New("sharded report differs")
	}
	return nil
}
