package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/grove/gesture"
	"github.com/pthm-cable/grove/swarm"
)

// Per-frame step cap in world units. Steps larger than this read as a
// teleport rather than a morph at 60 Hz.
const maxComfortableStep = 1.2

// FitnessEvaluator runs headless swarm simulations and scores how
// closely the motion matches the target settle and sweep times.
type FitnessEvaluator struct {
	params       *ParamVector
	maxFrames    int
	seeds        []int64
	particles    int
	settleFrames float64 // target frames from flip to convergence
	turnFrames   float64 // target frames per full world turn at |handX|=1
	settleTol    float64 // convergence distance in world units

	mu         sync.Mutex
	lastSettle float64 // settle frames from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxFrames int, seeds []int64, particles int, settleFrames, turnFrames float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:       params,
		maxFrames:    maxFrames,
		seeds:        seeds,
		particles:    particles,
		settleFrames: settleFrames,
		turnFrames:   turnFrames,
		settleTol:    0.05,
	}
}

// LastSettle returns the mean settle frames from the most recent
// evaluation.
func (fe *FitnessEvaluator) LastSettle() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSettle
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	clamped := fe.params.Clamp(raw)
	lerp := float32(clamped[0])
	steer := float32(clamped[1])

	var total, settleSum float64
	for _, seed := range fe.seeds {
		fitness, settle := fe.evaluateSeed(seed, lerp, steer)
		total += fitness
		settleSum += settle
	}

	fe.mu.Lock()
	fe.lastSettle = settleSum / float64(len(fe.seeds))
	fe.mu.Unlock()

	return total / float64(len(fe.seeds))
}

// evaluateSeed runs one simulation: release the pinch, time the morph
// to the dispersed formation, then sweep the hand and time a full turn.
func (fe *FitnessEvaluator) evaluateSeed(seed int64, lerp, steer float32) (float64, float64) {
	sim := swarm.NewSimulator(swarm.Options{
		Count:         fe.particles,
		Seed:          seed,
		LerpFactor:    lerp,
		SteerRotation: steer,
	})

	// The pool starts on the assembled targets, so the first release
	// frame takes the largest step of the whole morph: lerp times the
	// widest assembled-to-dispersed gap.
	var maxGap float32
	for i, p := range sim.Assembled().Points {
		if gap := sim.Dispersed().Points[i].Sub(p).Length(); gap > maxGap {
			maxGap = gap
		}
	}
	firstStep := float64(lerp) * float64(maxGap)

	release := gesture.State{Grab: false}
	settle := float64(fe.maxFrames)
	for frame := 0; frame < fe.maxFrames; frame++ {
		sim.Advance(release)
		if sim.MaxTargetDistance() < fe.settleTol {
			settle = float64(frame + 1)
			break
		}
	}

	// Sweep phase: hold full deflection and measure rotation per frame.
	sweep := gesture.State{Grab: false, HandX: 1}
	before := sim.Rotation()
	const sweepFrames = 60
	for frame := 0; frame < sweepFrames; frame++ {
		sim.Advance(sweep)
	}
	perFrame := float64(sim.Rotation()-before) / sweepFrames
	turn := 2 * math.Pi / perFrame

	settleErr := (settle - fe.settleFrames) / fe.settleFrames
	turnErr := (turn - fe.turnFrames) / fe.turnFrames

	jerk := 0.0
	if firstStep > maxComfortableStep {
		jerk = (firstStep - maxComfortableStep) * 4
	}

	return settleErr*settleErr + turnErr*turnErr + jerk, settle
}
