package httpapi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

type slotRequest struct {
	CompetitorID int64 `json:"competitor_id" validate:"gte=0"`
	Rank         int   `json:"rank" validate:"gte=0"`
	WorkoutID    int64 `json:"workout_id" validate:"gte=0"`
}

type savePickRequest struct {
	Gender   int         `json:"gender" validate:"required,oneof=1 2"`
	Previous slotRequest `json:"previous"`
	Next     slotRequest `json:"next"`
}

type savePropPickRequest struct {
	OptionID int64 `json:"option_id" validate:"required,gt=0"`
}

type updateScoresRequest struct {
	Scores []usecase.ScoreInput `json:"scores" validate:"required,min=1,dive"`
}

type analyticsJobRequest struct {
	CompetitionIDs []int64 `json:"competition_ids" validate:"omitempty,dive,gt=0"`
	MaxWorkers     int     `json:"max_workers" validate:"gte=0,lte=32"`
}

type notifyJobRequest struct {
	Topic    string   `json:"topic" validate:"omitempty,max=64"`
	Title    string   `json:"title" validate:"omitempty,max=200"`
	Message  string   `json:"message" validate:"required,max=4096"`
	Tags     []string `json:"tags" validate:"omitempty,max=8,dive,required"`
	Priority int      `json:"priority" validate:"gte=0,lte=5"`
}

type leaderboardDTO struct {
	TournamentID    int64                 `json:"tournament_id"`
	CompetitionID   int64                 `json:"competition_id"`
	TournamentName  string                `json:"tournament_name"`
	CompetitionName string                `json:"competition_name"`
	CompetitionLogo string                `json:"competition_logo,omitempty"`
	Mode            string                `json:"mode"`
	LockedEvents    int                   `json:"locked_events"`
	Entries         []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	Rank        int     `json:"rank"`
	EntryID     int64   `json:"entry_id"`
	UserID      int64   `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar,omitempty"`
	MenPoints   float64 `json:"men_points"`
	WomenPoints float64 `json:"women_points"`
	Points      float64 `json:"points"`
	Tiebreak    int     `json:"tiebreak"`
}

type matchupDTO struct {
	TournamentID int64          `json:"tournament_id"`
	Mode         string         `json:"mode"`
	Entry        matchupSideDTO `json:"entry"`
	Opponent     matchupSideDTO `json:"opponent"`
}

type matchupSideDTO struct {
	EntryID     int64               `json:"entry_id,omitempty"`
	DisplayName string              `json:"display_name"`
	Avatar      string              `json:"avatar,omitempty"`
	IsField     bool                `json:"is_field"`
	MenPoints   float64             `json:"men_points"`
	WomenPoints float64             `json:"women_points"`
	Points      float64             `json:"points"`
	MenPicks    []scoredPickDTO     `json:"men_picks"`
	WomenPicks  []scoredPickDTO     `json:"women_picks"`
	PropPoints  float64             `json:"prop_points"`
	PropWins    int                 `json:"prop_wins"`
	PropPicks   []scoredPropPickDTO `json:"prop_picks,omitempty"`
}

type scoredPickDTO struct {
	CompetitorID  int64   `json:"competitor_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PredictedRank int     `json:"predicted_rank,omitempty"`
	Ordinal       int     `json:"ordinal,omitempty"`
	Placement     int     `json:"placement"`
	Points        float64 `json:"points"`
	EventPoints   float64 `json:"event_points"`
	Withdrawn     bool    `json:"withdrawn"`
	Cut           bool    `json:"cut"`
	Suspended     bool    `json:"suspended"`
	Final         bool    `json:"final"`
}

type scoredPropPickDTO struct {
	PropID   int64   `json:"prop_id"`
	OptionID int64   `json:"option_id"`
	Title    string  `json:"title"`
	Label    string  `json:"label"`
	Points   float64 `json:"points"`
	IsWinner bool    `json:"is_winner"`
	Settled  bool    `json:"settled"`
}

type entryPicksDTO struct {
	EntryID int64     `json:"entry_id"`
	Men     []pickDTO `json:"men"`
	Women   []pickDTO `json:"women"`
}

type pickDTO struct {
	ID           int64 `json:"id"`
	CompetitorID int64 `json:"competitor_id"`
	Rank         int   `json:"rank"`
	WorkoutID    int64 `json:"workout_id,omitempty"`
}

type propDTO struct {
	ID               int64           `json:"id"`
	CompetitionID    int64           `json:"competition_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	IsActive         bool            `json:"is_active"`
	IsComplete       bool            `json:"is_complete"`
	SelectedOptionID int64           `json:"selected_option_id,omitempty"`
	Options          []propOptionDTO `json:"options"`
}

type propOptionDTO struct {
	ID         int64   `json:"id"`
	Label      string  `json:"label"`
	Points     float64 `json:"points"`
	IsWinner   bool    `json:"is_winner"`
	PickCount  int     `json:"pick_count"`
	Percentage float64 `json:"percentage"`
}

type adpDTO struct {
	CompetitorID int64   `json:"competitor_id"`
	Gender       string  `json:"gender"`
	ADP          float64 `json:"adp"`
}

type workoutPredictionDTO struct {
	CompetitorID int64   `json:"competitor_id"`
	Gender       string  `json:"gender"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Picks        int     `json:"picks"`
	Percentile   float64 `json:"percentile"`
}

type scoresUpdatedDTO struct {
	CompetitionID int64 `json:"competition_id"`
	Ordinal       int   `json:"ordinal"`
	Updated       int   `json:"updated"`
}

type workoutStateDTO struct {
	CompetitionID int64  `json:"competition_id"`
	Ordinal       int    `json:"ordinal"`
	State         string `json:"state"`
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parsePathOrdinal(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("ordinal"))
	ordinal, err := strconv.Atoi(raw)
	if err != nil || ordinal < 1 {
		return 0, fmt.Errorf("%w: ordinal must be >= 1", usecase.ErrInvalidInput)
	}
	return ordinal, nil
}

// parseOptionalQueryID returns 0 when the parameter is absent.
func parseOptionalQueryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseGenderQuery(r *http.Request) (competitor.Gender, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("gender")))
	switch raw {
	case "1", "men", "m":
		return competitor.GenderMen, nil
	case "2", "women", "w":
		return competitor.GenderWomen, nil
	default:
		return competitor.GenderUnknown, fmt.Errorf("%w: gender must be men (1) or women (2)", usecase.ErrInvalidInput)
	}
}

func leaderboardToDTO(ctx context.Context, board leaderboard.Board) leaderboardDTO {
	_ = ctx

	entries := make([]leaderboardEntryDTO, 0, len(board.Entries))
	for _, e := range board.Entries {
		entries = append(entries, leaderboardEntryDTO{
			Rank:        e.Rank,
			EntryID:     e.EntryID,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			Avatar:      e.Avatar,
			MenPoints:   round2(e.MenPoints),
			WomenPoints: round2(e.WomenPoints),
			Points:      round2(e.Points),
			Tiebreak:    e.Tiebreak,
		})
	}

	return leaderboardDTO{
		TournamentID:    board.TournamentID,
		CompetitionID:   board.CompetitionID,
		TournamentName:  board.TournamentName,
		CompetitionName: board.CompetitionName,
		CompetitionLogo: board.CompetitionLogo,
		Mode:            board.Mode.String(),
		LockedEvents:    board.LockedEvents,
		Entries:         entries,
	}
}

func matchupToDTO(ctx context.Context, m leaderboard.Matchup) matchupDTO {
	return matchupDTO{
		TournamentID: m.TournamentID,
		Mode:         m.Mode.String(),
		Entry:        matchupSideToDTO(ctx, m.Entry),
		Opponent:     matchupSideToDTO(ctx, m.Opponent),
	}
}

func matchupSideToDTO(ctx context.Context, side leaderboard.MatchupSide) matchupSideDTO {
	_ = ctx

	out := matchupSideDTO{
		EntryID:     side.EntryID,
		DisplayName: side.DisplayName,
		Avatar:      side.Avatar,
		IsField:     side.IsField,
		MenPoints:   round2(side.MenPoints),
		WomenPoints: round2(side.WomenPoints),
		Points:      round2(side.Points),
		MenPicks:    scoredPicksToDTO(side.MenPicks),
		WomenPicks:  scoredPicksToDTO(side.WomenPicks),
		PropPoints:  round2(side.PropPoints),
		PropWins:    side.PropWins,
	}
	if len(side.PropPicks) > 0 {
		out.PropPicks = make([]scoredPropPickDTO, 0, len(side.PropPicks))
		for _, p := range side.PropPicks {
			out.PropPicks = append(out.PropPicks, scoredPropPickDTO{
				PropID:   p.PropID,
				OptionID: p.OptionID,
				Title:    p.Title,
				Label:    p.Label,
				Points:   p.Points,
				IsWinner: p.IsWinner,
				Settled:  p.Settled,
			})
		}
	}
	return out
}

func scoredPicksToDTO(picks []scoring.ScoredPick) []scoredPickDTO {
	out := make([]scoredPickDTO, 0, len(picks))
	for _, p := range picks {
		out = append(out, scoredPickDTO{
			CompetitorID:  p.CompetitorID,
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			PredictedRank: p.PredictedRank,
			Ordinal:       p.Ordinal,
			Placement:     p.Placement,
			Points:        round2(p.Points),
			EventPoints:   p.EventPoints,
			Withdrawn:     p.Withdrawn,
			Cut:           p.Cut,
			Suspended:     p.Suspended,
			Final:         p.Final,
		})
	}
	return out
}

func entryPicksToDTO(ctx context.Context, v pick.EntryPicks) entryPicksDTO {
	_ = ctx

	convert := func(items []pick.Pick) []pickDTO {
		out := make([]pickDTO, 0, len(items))
		for _, p := range items {
			out = append(out, pickDTO{
				ID:           p.ID,
				CompetitorID: p.CompetitorID,
				Rank:         p.Rank,
				WorkoutID:    p.WorkoutID,
			})
		}
		return out
	}

	return entryPicksDTO{
		EntryID: v.EntryID,
		Men:     convert(v.Men),
		Women:   convert(v.Women),
	}
}

func propViewToDTO(ctx context.Context, v usecase.PropView) propDTO {
	_ = ctx

	options := make([]propOptionDTO, 0, len(v.Prop.Options))
	for _, o := range v.Prop.Options {
		options = append(options, propOptionDTO{
			ID:         o.ID,
			Label:      o.Label,
			Points:     o.Points,
			IsWinner:   o.IsWinner,
			PickCount:  o.PickCount,
			Percentage: v.Percentages[o.ID],
		})
	}

	return propDTO{
		ID:               v.Prop.ID,
		CompetitionID:    v.Prop.CompetitionID,
		Title:            v.Prop.Title,
		Description:      v.Prop.Description,
		IsActive:         v.Prop.IsActive,
		IsComplete:       v.Prop.IsComplete,
		SelectedOptionID: v.SelectedOptionID,
		Options:          options,
	}
}

func adpToDTO(v analytics.ADPRecord) adpDTO {
	return adpDTO{
		CompetitorID: v.CompetitorID,
		Gender:       v.Gender.String(),
		ADP:          round2(v.ADP),
	}
}

func workoutPredictionToDTO(v analytics.WorkoutPrediction) workoutPredictionDTO {
	return workoutPredictionDTO{
		CompetitorID: v.CompetitorID,
		Gender:       v.Gender.String(),
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Picks:        v.Picks,
		Percentile:   round2(v.Percentile),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
