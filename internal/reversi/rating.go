// FILE: reversi/internal/reversi/rating.go
package reversi

import (
	"fmt"
	"math"
)

// MoveRating grades an already-played move on a 1-5 star scale by
// comparing its downstream value against the best and worst achievable
// values from the position. Stars is 0 only when the player had no legal
// moves, which marks the rating inapplicable rather than poor.
type MoveRating struct {
	Stars       int    `json:"stars"`
	Feedback    string `json:"feedback"`
	BestScore   int    `json:"bestScore"`
	WorstScore  int    `json:"worstScore"`
	PlayedScore int    `json:"playedScore"`
}

// feedback text per star tier.
var ratingFeedback = map[int]string{
	5: "optimal",
	4: "strong",
	3: "good, slightly suboptimal",
	2: "weak, has drawbacks",
	1: "likely a mistake",
}

// RateMove grades played, a move by player on board b (the position before
// the move), searching depth plies. The played move must be legal; an
// illegal move is an explicit error rather than a silent nonsense rating.
func RateMove(b Board, player Disc, played Move, depth int) (MoveRating, error) {
	legal := ValidMoves(b, player)
	if len(legal) == 0 {
		return MoveRating{Stars: 0, Feedback: "no moves available"}, nil
	}

	isLegal := false
	for _, m := range legal {
		if m == played {
			isLegal = true
			break
		}
	}
	if !isLegal {
		return MoveRating{}, fmt.Errorf("rate move (%d,%d): %w", played.Row, played.Col, ErrInvalidMove)
	}

	best := Search(b, depth, true, player).Score

	// Value of each candidate is the opponent's best reply, still scored
	// from player's perspective.
	replyDepth := depth - 1
	if replyDepth < 1 {
		replyDepth = 1
	}
	moveValue := func(m Move) int {
		child := apply(b, player, m, FlipsForMove(b, player, m.Row, m.Col))
		return Search(child, replyDepth, false, player).Score
	}

	worst := moveValue(legal[0])
	for _, m := range legal[1:] {
		if v := moveValue(m); v < worst {
			worst = v
		}
	}

	playedValue := moveValue(played)

	// A single achievable outcome means the played move was as good as any.
	normalized := 1.0
	if best > worst {
		normalized = float64(playedValue-worst) / float64(best-worst)
		if normalized < 0 {
			normalized = 0
		} else if normalized > 1 {
			normalized = 1
		}
	}

	stars := int(math.Round(normalized*4)) + 1
	if stars < 1 {
		stars = 1
	} else if stars > 5 {
		stars = 5
	}

	return MoveRating{
		Stars:       stars,
		Feedback:    ratingFeedback[stars],
		BestScore:   best,
		WorstScore:  worst,
		PlayedScore: playedValue,
	}, nil
}
