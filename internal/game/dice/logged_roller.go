package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with expression, dice values, sum, max and min.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Source returns the Source the Roller draws from.
func (r *Roller) Source() Source {
	return r.src
}

// Roll rolls n dice of d sides and logs the result at debug level.
//
// Postcondition: result logged; returns RollResult or error.
func (r *Roller) Roll(n, d int) (RollResult, error) {
	result, err := Roll(n, d, r.src)
	if err != nil {
		r.logger.Debug("dice roll rejected",
			zap.Int("count", n),
			zap.Int("sides", d),
			zap.Error(err),
		)
		return RollResult{}, err
	}
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression()),
		zap.Ints("dice", result.Dice),
		zap.Int("sum", result.Sum),
		zap.Int("max", result.Max),
		zap.Int("min", result.Min),
	)
	return result, nil
}

// RollText parses text as dice notation and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse/roll error.
func (r *Roller) RollText(text string) (RollResult, error) {
	c := ParseText(text)
	if err := c.Err(); err != nil {
		r.logger.Debug("dice text rejected", zap.String("text", text))
		return RollResult{}, err
	}
	return r.Roll(c.Count, c.Sides)
}
