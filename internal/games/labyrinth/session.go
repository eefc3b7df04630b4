package labyrinth

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/maze"
	"github.com/vovakirdan/labyrinth/internal/sched"
)

// Mode is the game mode of a session.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeRace     Mode = "race"
	ModeInfinite Mode = "infinite"
)

// ParseMode converts a user-facing name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStandard, ModeRace, ModeInfinite:
		return Mode(s), nil
	case "":
		return ModeStandard, nil
	}
	return "", fmt.Errorf("labyrinth: unknown mode %q (want standard, race or infinite)", s)
}

// Layout fixes the maze of one round: tier, size and generator seed.
type Layout struct {
	Tier int
	Cols int
	Rows int
	Seed int64
}

// RoundInfo describes a freshly generated round.
type RoundInfo struct {
	Mode     Mode
	Tier     int
	TierName string
	Cols     int
	Rows     int
	Seed     int64
	Round    int // 1-based round number within the game
}

// Session is the game state machine for one player: the current maze, the
// logical player cell, move and round counters and the round clock.
//
// A Session owns its timers. The clock lives in a game scope that survives
// round changes; the deferred next-round timer lives in a round scope that is
// closed on every transition.
type Session struct {
	cfg    config.Config
	rng    *rand.Rand
	fxRng  *rand.Rand
	sched  *sched.Scheduler
	logger *log.Logger

	gameScope  *sched.Scope
	roundScope *sched.Scope
	clock      *sched.Handle
	deadline   *sched.Handle
	pending    *sched.Handle

	mode      Mode
	startTier int
	tier      int
	grid      *maze.Grid
	seed      int64
	round     int
	player    maze.Position
	anim      PlayerAnim
	trail     *Trail
	particles *Particles

	moves     int
	completed int
	won       bool
	timedOut  bool
	startedAt time.Duration
	elapsed   time.Duration
	replay    bool // fixed layout, not reported to onRound

	onRound func(RoundInfo)
}

// NewSession creates an idle session. Mazes are derived from seed, so two
// sessions with the same seed and inputs play identically.
func NewSession(cfg config.Config, seed int64) *Session {
	s := &Session{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		fxRng:     rand.New(rand.NewSource(seed ^ 0x5eed)),
		sched:     sched.New(),
		logger:    log.New(io.Discard),
		mode:      ModeStandard,
		trail:     NewTrail(cfg.Animation.TrailLength),
		particles: &Particles{},
	}
	s.gameScope = s.sched.NewScope()
	s.roundScope = s.sched.NewScope()
	return s
}

// SetLogger replaces the session logger. A nil logger discards output.
func (s *Session) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.logger = l
}

// OnRound registers a hook called for every generated round. Rounds started
// from a fixed layout are replays and are not reported.
func (s *Session) OnRound(fn func(RoundInfo)) {
	s.onRound = fn
}

// StartGame begins a new game in the given mode. The tier is used as given in
// standard mode; race starts at the easiest tier and infinite picks one at
// random. Counters, clock and flags are reset and all timers are released.
func (s *Session) StartGame(mode Mode, tier int) {
	s.resetGame(mode, tier)

	switch mode {
	case ModeRace:
		tier = s.cfg.RaceTier(0)
	case ModeInfinite:
		tier = s.randomTier()
	default:
		tier = s.clampTier(tier)
	}
	s.newRound(s.layoutFor(tier))
}

// StartLayout begins a standard game on a fixed layout, used to replay an
// archived maze. The OnRound hook is not called for it.
func (s *Session) StartLayout(l Layout) {
	s.resetGame(ModeStandard, l.Tier)
	s.replay = true
	l.Tier = s.clampTier(l.Tier)
	s.newRound(l)
}

// Restart starts a new game with the same mode and starting tier.
func (s *Session) Restart() {
	s.StartGame(s.mode, s.startTier)
}

// Close releases every timer the session holds.
func (s *Session) Close() {
	s.roundScope.Close()
	s.gameScope.Close()
	s.clock, s.deadline, s.pending = nil, nil, nil
}

func (s *Session) resetGame(mode Mode, tier int) {
	s.Close()
	s.gameScope = s.sched.NewScope()
	s.roundScope = s.sched.NewScope()

	s.mode = mode
	s.startTier = tier
	s.moves = 0
	s.completed = 0
	s.round = 0
	s.won = false
	s.timedOut = false
	s.startedAt = 0
	s.elapsed = 0
	s.replay = false
}

func (s *Session) layoutFor(tier int) Layout {
	t := s.cfg.Tier(tier)
	return Layout{Tier: tier, Cols: t.Cols, Rows: t.Rows, Seed: s.rng.Int63()}
}

func (s *Session) newRound(l Layout) {
	s.roundScope.Close()
	s.roundScope = s.sched.NewScope()
	s.pending = nil

	s.tier = l.Tier
	s.seed = l.Seed
	s.grid = maze.GenerateSeeded(l.Cols, l.Rows, l.Seed)
	s.round++
	s.player = maze.Position{}
	s.anim = SettledAt(s.player)
	s.trail.Reset()
	s.particles.Reset()

	info := RoundInfo{
		Mode:     s.mode,
		Tier:     s.tier,
		TierName: s.cfg.Tier(s.tier).Name,
		Cols:     s.grid.Cols(),
		Rows:     s.grid.Rows(),
		Seed:     s.seed,
		Round:    s.round,
	}
	s.logger.Debug("new round", "mode", info.Mode, "tier", info.TierName,
		"size", fmt.Sprintf("%dx%d", info.Cols, info.Rows), "seed", info.Seed, "round", info.Round,
		"replay", s.replay)
	if s.onRound != nil && !s.replay {
		s.onRound(info)
	}
}

func (s *Session) clampTier(tier int) int {
	n := len(s.cfg.Difficulties)
	if n == 0 || tier < 0 {
		return 0
	}
	if tier >= n {
		return n - 1
	}
	return tier
}

func (s *Session) randomTier() int {
	n := len(s.cfg.Difficulties)
	if n == 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// AttemptMove applies a first-press move. It is accepted only when the
// previous move animation has finished.
func (s *Session) AttemptMove(d maze.Direction) bool {
	return s.attempt(d, false)
}

// AttemptFastMove applies a chained move from a held key. It is accepted once
// the current animation has reached the fast-accept threshold.
func (s *Session) AttemptFastMove(d maze.Direction) bool {
	return s.attempt(d, true)
}

func (s *Session) attempt(d maze.Direction, fast bool) bool {
	if s.won || s.grid == nil || s.TransitionPending() {
		return false
	}
	if fast {
		if s.anim.Progress < s.cfg.Animation.FastAcceptProgress {
			return false
		}
	} else if !s.anim.Done() {
		return false
	}
	if !maze.CanMove(s.grid, s.player, d) {
		return false
	}

	s.moves++
	s.player = s.player.Step(d)
	s.anim = s.anim.Start(s.player, d, fast)
	if !s.clock.Active() {
		s.startClock()
	}

	if s.player == s.grid.Goal() {
		s.reachGoal()
	}
	return true
}

func (s *Session) startClock() {
	s.startedAt = s.sched.Now() - s.elapsed
	s.clock = s.gameScope.Every(s.cfg.Round.ClockInterval, func() {
		s.elapsed = s.sched.Now() - s.startedAt
	})
	if s.mode == ModeRace && s.deadline == nil {
		s.deadline = s.gameScope.After(s.cfg.Race.TimeBudget-s.elapsed, s.timeout)
	}
}

func (s *Session) stopClock() {
	if s.clock.Cancel() {
		s.elapsed = s.sched.Now() - s.startedAt
	}
	s.deadline.Cancel()
}

func (s *Session) reachGoal() {
	switch s.mode {
	case ModeRace, ModeInfinite:
		s.completed++
		s.logger.Debug("maze completed", "mode", s.mode, "completed", s.completed, "moves", s.moves)
		s.pending = s.roundScope.After(s.cfg.Round.TransitionDelay, s.nextRound)
	default:
		s.won = true
		s.stopClock()
		s.logger.Info("maze solved", "moves", s.moves, "time", FormatClock(s.elapsed))
		goal := s.grid.Goal()
		s.particles.Burst(s.fxRng, float64(goal.X), float64(goal.Y), s.cfg.Animation.ParticleCount)
	}
}

func (s *Session) nextRound() {
	var tier int
	if s.mode == ModeRace {
		tier = s.cfg.RaceTier(s.completed)
	} else {
		tier = s.randomTier()
	}
	s.newRound(s.layoutFor(tier))
}

func (s *Session) timeout() {
	s.elapsed = s.cfg.Race.TimeBudget
	s.won = true
	s.timedOut = true
	s.roundScope.Close()
	s.gameScope.Close()
	s.clock, s.deadline, s.pending = nil, nil, nil
	s.logger.Info("race over", "completed", s.completed, "moves", s.moves)
}

// Tick advances the session by dt: timers first, then the player animation,
// trail and particles.
func (s *Session) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.sched.Advance(dt)

	sec := dt.Seconds()
	anim := s.cfg.Animation
	if !s.anim.Done() {
		s.anim = Advance(s.anim, sec, anim)
		x, y := s.anim.Position()
		s.trail.Push(x, y)
	}
	s.trail.Decay(sec, anim.TrailDecay)
	if s.grid != nil {
		s.particles.Update(sec, anim.Gravity, float64(s.grid.Rows()+1))
	}
}

// TransitionPending reports whether a cleared maze is waiting for the next round.
func (s *Session) TransitionPending() bool {
	return s.pending.Active()
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Tier returns the tier index of the current round.
func (s *Session) Tier() int { return s.tier }

// TierName returns the name of the current tier.
func (s *Session) TierName() string { return s.cfg.Tier(s.tier).Name }

// Grid returns the maze of the current round, or nil before StartGame.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Seed returns the generator seed of the current round.
func (s *Session) Seed() int64 { return s.seed }

// Round returns the 1-based round number.
func (s *Session) Round() int { return s.round }

// Player returns the logical player cell.
func (s *Session) Player() maze.Position { return s.player }

// Anim returns the player animation state.
func (s *Session) Anim() PlayerAnim { return s.anim }

// Trail returns the movement trail.
func (s *Session) Trail() *Trail { return s.trail }

// Particles returns the celebration particles.
func (s *Session) Particles() *Particles { return s.particles }

// Moves returns the number of accepted moves in this game.
func (s *Session) Moves() int { return s.moves }

// Completed returns the number of mazes cleared in race or infinite mode.
func (s *Session) Completed() int { return s.completed }

// Won reports whether the game has ended. A race that ran out of time also
// counts as won.
func (s *Session) Won() bool { return s.won }

// TimedOut reports whether a race ended on the clock.
func (s *Session) TimedOut() bool { return s.timedOut }

// ClockRunning reports whether the round clock is ticking.
func (s *Session) ClockRunning() bool { return s.clock.Active() }

// Elapsed returns the time played so far, quantized to the clock interval
// while the clock runs.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Remaining returns the race time left. It is zero outside race mode.
func (s *Session) Remaining() time.Duration {
	if s.mode != ModeRace {
		return 0
	}
	left := s.cfg.Race.TimeBudget - s.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Clock returns the time shown to the player: remaining time in race mode
// and elapsed time otherwise.
func (s *Session) Clock() time.Duration {
	if s.mode == ModeRace {
		return s.Remaining()
	}
	return s.elapsed
}

// FormatClock formats d as MM:SS. Minutes grow past 99 rather than wrap.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ClockText returns Clock formatted for display. A countdown rounds up so it
// shows 00:00 only once time is out.
func (s *Session) ClockText() string {
	d := s.Clock()
	if s.mode == ModeRace {
		d = (d + time.Second - 1).Truncate(time.Second)
	}
	return FormatClock(d)
}
