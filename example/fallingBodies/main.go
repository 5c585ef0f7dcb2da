package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	engine "github.com/void191/v0-game-engine"
	"github.com/void191/v0-game-engine/scene"
)

func main() {
	log, _ := zap.NewDevelopment()
	defer log.Sync()

	cfg := engine.DefaultConfig()
	store := scene.NewStore(log)
	eng := engine.New(cfg, log)
	clk := cfg.NewClock()

	// Kinematic ground slab. Moved only by external code, but a full
	// collision participant.
	ground := store.Create("ground", scene.NoEntity)
	ground.Transform.Position = mgl64.Vec3{0, -1, 0}
	ground.Collider = scene.NewBoxCollider(mgl64.Vec3{20, 2, 20})
	ground.Rigidbody = scene.NewRigidbody()
	ground.Rigidbody.IsKinematic = true

	// A sphere and a box dropped from different heights.
	ball := store.Create("ball", scene.NoEntity)
	ball.Transform.Position = mgl64.Vec3{0, 5, 0}
	ball.Collider = scene.NewSphereCollider(0.5)
	ball.Rigidbody = scene.NewRigidbody()

	crate := store.Create("crate", scene.NoEntity)
	crate.Transform.Position = mgl64.Vec3{3, 8, 0}
	crate.Collider = scene.NewBoxCollider(mgl64.Vec3{1, 1, 1})
	crate.Rigidbody = scene.NewRigidbody()
	crate.Rigidbody.AngularDrag = 0.1

	eng.Events.Subscribe(engine.COLLISION_ENTER, func(ev engine.Event) {
		hit := ev.(engine.CollisionEnterEvent)
		fmt.Printf("💥 %s touched %s\n", hit.EntityA.Name, hit.EntityB.Name)
	})

	// Simulate 4 seconds of frames at ~60 fps. The clock drains whole
	// physics steps out of each frame delta.
	const frameDelta = 1.0 / 60.0
	for frame := 0; frame < 240; frame++ {
		clk.Advance(frameDelta)
		for clk.ConsumeStep() {
			eng.Step(store, clk.FixedDelta)
		}

		if frame%60 == 0 {
			fmt.Printf("t=%.2fs  ball.y=%.3f  crate.y=%.3f\n",
				clk.Elapsed, ball.Transform.Position.Y(), crate.Transform.Position.Y())
		}
	}

	// Ground check the ball via raycast.
	if hit, ok := eng.Raycast(store, ball.Transform.Position, mgl64.Vec3{0, -1, 0}, 100); ok {
		fmt.Printf("ray below ball hit %q at distance %.3f (normal %v)\n",
			hit.Entity.Name, hit.Distance, hit.Normal)
	}
}
