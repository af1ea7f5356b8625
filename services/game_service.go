package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/game"
	"github.com/mindevis/stitch-cafe/models"
	"github.com/mindevis/stitch-cafe/repositories"
)

// OrderOutcome describes the result of taking a new order
type OrderOutcome struct {
	// AlreadyActive is set when the player must finish the current order first
	AlreadyActive bool
	Dishes        []models.Dish
	Tag           string
	OrderNumber   int
	Total         int
}

// OrderView is the player's current order, if any
type OrderView struct {
	HasOrder bool
	Dishes   []models.Dish
	Total    int
}

// CompletionResult describes the result of finishing an order
type CompletionResult struct {
	// Completed is false when the player had no active order
	Completed    bool
	OrderNumber  int
	TotalCrosses int
	Title        string
	LevelChanged bool
}

// GameService interface defines the cafe game logic
type GameService interface {
	StartPlayer(ctx context.Context, userID int64, firstName string) error
	NewOrder(ctx context.Context, userID int64, firstName string) (*OrderOutcome, error)
	CurrentOrder(ctx context.Context, userID int64, firstName string) (*OrderView, error)
	FinishOrder(ctx context.Context, userID int64, firstName string) (*CompletionResult, error)
}

// gameService implements GameService interface
type gameService struct {
	users  repositories.UserRepository
	gen    *game.Generator
	logger *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(users repositories.UserRepository, gen *game.Generator, logger *zap.Logger) GameService {
	return &gameService{users: users, gen: gen, logger: logger}
}

// StartPlayer registers the player in the database
func (s *gameService) StartPlayer(ctx context.Context, userID int64, firstName string) error {
	if err := s.users.Ensure(ctx, userID, firstName); err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}
	return nil
}

// NewOrder gives the player a new order.
//
// A regular order unless a special event fires: events never trigger while
// an order is active, and never directly after another special order.
func (s *gameService) NewOrder(ctx context.Context, userID int64, firstName string) (*OrderOutcome, error) {
	user, err := s.users.GetByID(ctx, userID, firstName)
	if err != nil {
		return nil, err
	}

	active, err := s.users.GetActiveOrder(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return &OrderOutcome{AlreadyActive: true}, nil
	}

	orderIndex := user.NextOrderIndex()

	event, err := s.rollSpecial(ctx, user, orderIndex)
	if err != nil {
		return nil, err
	}

	if event != nil {
		outcome, err := s.specialOrder(ctx, user, event)
		if err != nil {
			return nil, err
		}
		if outcome != nil {
			s.logger.Info("special order started",
				zap.Int64("user_id", userID),
				zap.String("tag", outcome.Tag),
				zap.Int("order_index", orderIndex))
			return outcome, nil
		}
		// Event could not build an order (no previous order to double);
		// fall through to a regular one
	}

	dishes := s.gen.RegularOrder(user.Level)
	order := &models.Order{Dishes: dishes}
	if err := s.users.SaveActiveOrder(ctx, userID, order); err != nil {
		return nil, err
	}

	return &OrderOutcome{
		Dishes:      dishes,
		OrderNumber: orderIndex,
		Total:       order.TotalCrosses(),
	}, nil
}

// rollSpecial decides whether a special event replaces the regular order
func (s *gameService) rollSpecial(ctx context.Context, user *models.User, orderIndex int) (*game.SpecialEvent, error) {
	// No specials back to back
	if user.TotalOrders > 0 {
		last, err := s.users.GetLastOrder(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if last != nil && last.Tag != "" {
			return nil, nil
		}
	}

	return s.gen.RollSpecial(orderIndex, user.Flags), nil
}

// specialOrder builds and saves the order for a triggered event.
// Returns nil when the event cannot produce an order.
func (s *gameService) specialOrder(ctx context.Context, user *models.User, event *game.SpecialEvent) (*OrderOutcome, error) {
	var dishes []models.Dish

	switch event.Kind {
	case game.EventDoublePrevious:
		last, err := s.users.GetLastOrder(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if last == nil || len(last.Dishes) == 0 {
			return nil, nil
		}
		dishes = game.DoubleOrder(last.Dishes)

	case game.EventHalfNewOrder:
		dishes = game.HalveOrder(s.gen.RegularOrder(user.Level))

	case game.EventRegular:
		dishes = []models.Dish{event.Dish}

	default:
		return nil, fmt.Errorf("unknown special event kind %q", event.Kind)
	}

	order := &models.Order{Dishes: dishes, Tag: event.Tag}
	if err := s.users.SaveActiveOrder(ctx, user.ID, order); err != nil {
		return nil, err
	}

	return &OrderOutcome{
		Dishes:      dishes,
		Tag:         event.Tag,
		OrderNumber: user.NextOrderIndex(),
		Total:       order.TotalCrosses(),
	}, nil
}

// CurrentOrder returns the player's active order
func (s *gameService) CurrentOrder(ctx context.Context, userID int64, firstName string) (*OrderView, error) {
	if _, err := s.users.GetByID(ctx, userID, firstName); err != nil {
		return nil, err
	}

	active, err := s.users.GetActiveOrder(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return &OrderView{}, nil
	}

	return &OrderView{
		HasOrder: true,
		Dishes:   active.Dishes,
		Total:    active.TotalCrosses(),
	}, nil
}

// FinishOrder completes the player's active order and updates statistics:
// order and cross totals, one-time event flags, and a level-up on every
// tenth completed order below the level cap.
func (s *gameService) FinishOrder(ctx context.Context, userID int64, firstName string) (*CompletionResult, error) {
	user, err := s.users.GetByID(ctx, userID, firstName)
	if err != nil {
		return nil, err
	}

	active, err := s.users.GetActiveOrder(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return &CompletionResult{}, nil
	}

	orderCrosses := active.TotalCrosses()

	// Keep the finished order around for the dirty plate event
	if len(active.Dishes) > 0 {
		last := &models.LastOrder{
			Dishes:  active.Dishes,
			Crosses: orderCrosses,
			Tag:     active.Tag,
		}
		if err := s.users.SaveLastOrder(ctx, userID, last); err != nil {
			s.logger.Warn("failed to save last order",
				zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	user.TotalOrders++
	user.TotalCrosses += orderCrosses

	switch active.Tag {
	case models.TagStudent:
		user.Flags.Student = true
	case models.TagCritic:
		user.Flags.Critic = true
	case models.TagDirtyPlate:
		user.Flags.DirtyPlate = true
	case models.TagSecondChef:
		user.Flags.SecondChef = true
	}

	levelChanged := false
	if user.TotalOrders%game.OrdersPerLevel == 0 && user.Level < game.MaxLevel {
		user.Level++
		levelChanged = true
	}

	if err := s.users.CompleteOrder(ctx, userID, user); err != nil {
		return nil, err
	}

	if levelChanged {
		s.logger.Info("player leveled up",
			zap.Int64("user_id", userID),
			zap.Int("level", user.Level))
	}

	return &CompletionResult{
		Completed:    true,
		OrderNumber:  user.TotalOrders,
		TotalCrosses: user.TotalCrosses,
		Title:        game.TitleFor(user.Level),
		LevelChanged: levelChanged,
	}, nil
}
