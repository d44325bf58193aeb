// Package sim runs the runner's simulation: jump physics, the encounter
// scheduler, scrolling collision and scoring, the hit flicker, and the
// ambient decorations. A Session owns all per-run state and orders the
// tick phases; nothing here is global, so sessions can run side by side.
package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-run/internal/config"
	"github.com/vovakirdan/crystal-run/internal/core"
	"github.com/vovakirdan/crystal-run/internal/games/crystal/anim"
)

// Options configures a Session. Zero fields get defaults: a fresh World,
// sources seeded from Seed, and a discarding logger.
type Options struct {
	Config      config.RunnerConfig
	Registry    Registry
	Source      Source // Encounter jitter, palette and spin
	DecorSource Source // Crystal placement
	Seed        int64
	Logger      *log.Logger
	Debug       bool // Ordering faults panic instead of being logged
	Difficulty  *config.DifficultyManager
	Start       float64 // Elapsed time at session start
}

// Stats are running totals for a session.
type Stats struct {
	Frames     int
	FixedTicks int
	Spawns     int
	Hits       int
	Scores     int
	Jumps      int
	Landings   int
	Toggles    int
	MaxHeight  float64
}

// FrameReport describes one variable-rate tick.
type FrameReport struct {
	Launched bool
	Landed   bool
	Skipped  bool
}

// FixedReport describes one fixed-rate tick.
type FixedReport struct {
	Spawned []SpawnEvent
	Hits    int
	Scores  int
	Toggled bool
	Visible bool
	Skipped bool
}

type joint struct {
	tag    anim.JointTag
	handle Handle
}

// Session is one run of the game.
type Session struct {
	cfg   config.RunnerConfig
	reg   Registry
	rng   Source
	decoR Source
	log   *log.Logger
	debug bool
	diff  *config.DifficultyManager

	motion   MotionParams
	speed    *LevelSpeed
	animator anim.Animator

	player Handle
	body   Player
	joints []joint
	frame  anim.Frame

	scheduler *Scheduler
	field     *Field
	decor     *Decor
	flicker   *Flicker

	spawns Channel[SpawnEvent]
	hits   Channel[HitEvent]
	scores Channel[ScoreEvent]
	jumps  Channel[JumpEvent]

	spawnQ *Queue[SpawnEvent]
	hurtQ  *Queue[HitEvent]
	hitQ   *Queue[HitEvent]
	scoreQ *Queue[ScoreEvent]

	stats Stats
	lives int
	over  bool
}

// NewSession validates the configuration, spawns the player with its
// joints, and primes the scheduler.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid config: %w", err)
	}

	s := &Session{
		cfg:   opts.Config,
		reg:   opts.Registry,
		rng:   opts.Source,
		decoR: opts.DecorSource,
		log:   opts.Logger,
		debug: opts.Debug,
		diff:  opts.Difficulty,
	}
	if s.reg == nil {
		s.reg = NewWorld()
	}
	if s.rng == nil {
		s.rng = NewSource(opts.Seed)
	}
	if s.decoR == nil {
		s.decoR = NewSource(opts.Seed + 1)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}

	cfg := opts.Config
	s.motion = MotionFromConfig(cfg.Physics)
	s.speed = NewLevelSpeed(cfg.Level.Speed)
	s.animator = AnimatorFromConfig(cfg.Body, cfg.Physics.JumpVelocity)
	s.scheduler = NewScheduler(opts.Start, cfg.Encounters.FirstDelay, cfg.Encounters.Delay)
	s.field = NewField(cfg.Level.DespawnX)
	s.decor = NewDecor(cfg.Decor)
	s.flicker = NewFlicker(cfg.Hurt.FlashTicks, cfg.Hurt.FlickTicks)

	s.spawnQ = s.spawns.Subscribe()
	s.hurtQ = s.hits.Subscribe()
	s.hitQ = s.hits.Subscribe()
	s.scoreQ = s.scores.Subscribe()

	s.lives = startingLives(cfg.Hurt)

	s.spawnPlayer()
	s.animate(opts.Start)
	return s, nil
}

// AnimatorFromConfig builds the rig animator from body dimensions.
func AnimatorFromConfig(body config.BodyConfig, jumpVelocity float64) anim.Animator {
	return anim.Animator{
		Legs: anim.Legs{
			LegLength:  body.LegLength,
			HalfStride: body.HalfStride,
			StepHeight: body.StepHeight,
			HipSplay:   body.HipSplay,
			HipForward: body.HipForward,
			FootSpread: body.FootSpread,
			TuckHeight: body.TuckHeight,
		},
		Tail: anim.Tail{
			Segments:      body.TailSegments,
			Amplitude:     body.TailAmplitude,
			Height:        body.TailHeight,
			SegmentLength: body.TailSegmentLength,
		},
		JumpVelocity: jumpVelocity,
	}
}

// startingLives is -1 for an endless run.
func startingLives(h config.HurtConfig) int {
	if h.Lives > 0 {
		return h.Lives
	}
	return -1
}

// Restart clears the track and begins a new run on the same registry and
// random streams. start is the elapsed time the new run begins at.
func (s *Session) Restart(start float64) {
	for _, o := range s.field.Clear() {
		s.reg.Destroy(o.Handle)
	}
	for _, c := range s.decor.Clear() {
		s.reg.Destroy(c.Handle)
	}
	s.spawnQ.Drain()
	s.hurtQ.Drain()
	s.hitQ.Drain()
	s.scoreQ.Drain()

	s.speed.Set(s.cfg.Level.Speed)
	s.scheduler = NewScheduler(start, s.cfg.Encounters.FirstDelay, s.cfg.Encounters.Delay)
	s.flicker = NewFlicker(s.cfg.Hurt.FlashTicks, s.cfg.Hurt.FlickTicks)
	s.stats = Stats{}
	s.lives = startingLives(s.cfg.Hurt)
	s.over = false

	if s.reg.Alive(s.player) {
		s.body = Player{}
		s.reg.SetTransform(s.player, core.NewTransform(core.Vec3{}))
	} else {
		s.spawnPlayer()
	}
	SyncVisibility(s.reg, s.player, true)
	s.animate(start)
	s.log.Debug("restart", "t", start)
}

func (s *Session) spawnPlayer() {
	s.player = s.reg.Create(0)
	s.body = Player{}
	s.reg.SetTransform(s.player, core.NewTransform(core.Vec3{}))
	s.joints = s.joints[:0]
	for _, tag := range anim.Joints(s.cfg.Body.TailSegments) {
		s.joints = append(s.joints, joint{tag: tag, handle: s.reg.Create(s.player)})
	}
}

// SubscribeJumps returns a queue receiving every JumpEvent from now on.
func (s *Session) SubscribeJumps() *Queue[JumpEvent] { return s.jumps.Subscribe() }

// SubscribeHits returns a queue receiving every HitEvent from now on.
func (s *Session) SubscribeHits() *Queue[HitEvent] { return s.hits.Subscribe() }

// SubscribeScores returns a queue receiving every ScoreEvent from now on.
func (s *Session) SubscribeScores() *Queue[ScoreEvent] { return s.scores.Subscribe() }

// SubscribeSpawns returns a queue receiving every SpawnEvent from now on.
func (s *Session) SubscribeSpawns() *Queue[SpawnEvent] { return s.spawns.Subscribe() }

// fault handles an ordering error: fatal in debug sessions, logged and
// skipped otherwise.
func (s *Session) fault(msg string, keyvals ...any) {
	if s.debug {
		panic(fmt.Sprintf("sim: %s %v", msg, keyvals))
	}
	s.log.Warn(msg, keyvals...)
}

// FrameTick runs the variable-rate phases: input, jump physics, gait and
// tail animation, and decoration scrolling.
func (s *Session) FrameTick(in core.InputFrame, clk core.Clock) FrameReport {
	if s.over {
		return FrameReport{Skipped: true}
	}
	if !s.reg.Alive(s.player) {
		s.fault("frame tick without a player", "handle", s.player)
		return FrameReport{Skipped: true}
	}
	s.stats.Frames++

	st := s.body.Integrate(s.motion, clk.Delta, in.Pressed(core.ActionJump), in.Held(core.ActionJump))
	if st.Launched {
		s.stats.Jumps++
		s.jumps.Emit(JumpEvent{})
		s.log.Debug("jump", "t", clk.Elapsed)
	}
	if st.Landed {
		s.stats.Landings++
		s.log.Debug("landed", "t", clk.Elapsed)
	}
	s.stats.MaxHeight = math.Max(s.stats.MaxHeight, s.body.Z)
	s.reg.SetTransform(s.player, core.NewTransform(core.V3(0, 0, s.body.Z)))

	s.animate(clk.Elapsed)
	s.scrollDecor(clk.Delta)

	return FrameReport{Launched: st.Launched, Landed: st.Landed}
}

func (s *Session) animate(elapsed float64) {
	s.frame = s.animator.Evaluate(elapsed, s.speed.Get(), s.body.Airborne, s.body.Velocity)
	for _, j := range s.joints {
		tr, err := s.frame.Place(j.tag)
		if err != nil {
			s.fault("joint placement failed", "joint", j.tag, "err", err)
			continue
		}
		if !s.reg.SetTransform(j.handle, tr) {
			s.log.Warn("stale joint handle skipped", "joint", j.tag)
		}
	}
}

func (s *Session) scrollDecor(dt float64) {
	spawned, removed := s.decor.Update(s.speed.Get()*dt, s.decoR)
	for _, c := range removed {
		s.reg.Destroy(c.Handle)
	}
	for _, c := range spawned {
		c.Handle = s.reg.Create(0)
	}
	for _, c := range s.decor.Crystals() {
		tr := core.LookAt(c.Pos(s.cfg.Decor.CaveRadius), core.V3(c.X, 0, s.cfg.Decor.CaveRadius*caveCenterRatio-0.25))
		if !s.reg.SetTransform(c.Handle, tr) {
			s.log.Warn("stale crystal handle skipped", "handle", c.Handle)
		}
	}
}

// FixedTick runs the fixed-rate phases in order: scheduler, spawner,
// collision and scoring, flicker, and visibility sync.
func (s *Session) FixedTick(clk core.Clock) FixedReport {
	if s.over {
		return FixedReport{Skipped: true, Visible: s.flicker.Visible()}
	}
	if !s.reg.Alive(s.player) {
		s.fault("fixed tick without a player", "handle", s.player)
		return FixedReport{Skipped: true}
	}
	s.stats.FixedTicks++
	s.applyDifficulty()

	var rep FixedReport

	if evt, ok := s.scheduler.Tick(clk.Elapsed, s.rng); ok {
		s.spawns.Emit(evt)
	}
	for _, evt := range s.spawnQ.Drain() {
		s.spawnObstacle(evt)
		rep.Spawned = append(rep.Spawned, evt)
	}

	for _, o := range s.field.Prune(s.reg.Alive) {
		s.log.Warn("stale obstacle skipped", "handle", o.Handle)
	}
	removed := s.field.Update(s.speed.Get()*clk.Delta, s.body.Z, &s.hits, &s.scores)
	for _, o := range removed {
		s.reg.Destroy(o.Handle)
	}
	for _, o := range s.field.Obstacles() {
		s.reg.SetTransform(o.Handle, o.Transform())
	}

	rep.Hits = len(s.hitQ.Drain())
	rep.Scores = len(s.scoreQ.Drain())
	s.tally(rep.Hits, rep.Scores, clk.Elapsed)

	rep.Visible = s.flicker.Tick(len(s.hurtQ.Drain()))
	rep.Toggled = SyncVisibility(s.reg, s.player, rep.Visible)
	if rep.Toggled {
		s.stats.Toggles++
	}
	return rep
}

func (s *Session) applyDifficulty() {
	if s.diff == nil || !s.diff.IsEnabled() {
		return
	}
	s.speed.Set(s.diff.Speed(s.cfg.Level.Speed, s.stats.Scores, s.stats.FixedTicks))
	s.scheduler.SetDelay(s.diff.Delay(s.cfg.Encounters.Delay, s.stats.Scores, s.stats.FixedTicks))
}

func (s *Session) spawnObstacle(evt SpawnEvent) {
	o := &Obstacle{
		Handle:  s.reg.Create(0),
		X:       s.cfg.Level.SpawnX,
		Radius:  s.cfg.Encounters.Radius,
		Height:  s.cfg.Encounters.Height,
		Palette: int(evt.Seq % uint32(s.cfg.Encounters.PaletteSize)),
		Spin:    float64(s.rng.Float32()),
	}
	s.reg.SetTransform(o.Handle, o.Transform())
	s.field.Add(o)
	s.stats.Spawns++
	s.log.Debug("spawn", "seq", evt.Seq, "palette", o.Palette)
}

func (s *Session) tally(hits, scores int, elapsed float64) {
	for i := 0; i < scores; i++ {
		s.stats.Scores++
		s.log.Debug("score", "total", s.stats.Scores, "t", elapsed)
	}
	for i := 0; i < hits; i++ {
		s.stats.Hits++
		s.log.Debug("hit", "total", s.stats.Hits, "t", elapsed)
		if s.lives > 0 {
			s.lives--
			if s.lives == 0 {
				s.over = true
				s.log.Info("out of lives", "score", s.stats.Scores, "hits", s.stats.Hits)
			}
		}
	}
}

// Player returns the player's vertical state.
func (s *Session) Player() Player { return s.body }

// PlayerHandle returns the player's registry handle.
func (s *Session) PlayerHandle() Handle { return s.player }

// Registry returns the registry the session writes into.
func (s *Session) Registry() Registry { return s.reg }

// Frame returns the most recent animation frame.
func (s *Session) Frame() anim.Frame { return s.frame }

// Joint returns the handle of a joint.
func (s *Session) Joint(tag anim.JointTag) (Handle, bool) {
	for _, j := range s.joints {
		if j.tag == tag {
			return j.handle, true
		}
	}
	return 0, false
}

// Speed returns the current level speed.
func (s *Session) Speed() float64 { return s.speed.Get() }

// Obstacles returns the live obstacles.
func (s *Session) Obstacles() []*Obstacle { return s.field.Obstacles() }

// Crystals returns the live decorations.
func (s *Session) Crystals() []*Crystal { return s.decor.Crystals() }

// Visible returns the player's desired visibility.
func (s *Session) Visible() bool { return s.flicker.Visible() }

// Stats returns the running totals.
func (s *Session) Stats() Stats { return s.stats }

// Lives returns the remaining lives, or -1 for an endless run.
func (s *Session) Lives() int { return s.lives }

// Over reports whether the run has ended.
func (s *Session) Over() bool { return s.over }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }
