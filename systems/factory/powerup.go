package factory

import (
	"github.com/automoto/snap-pong/archetypes"
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePowerUp spawns a falling power-up at a position.
func CreatePowerUp(ecs *ecs.ECS, x, y float64, typ components.PowerUpType) *donburi.Entry {
	powerup := archetypes.PowerUp.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.PowerUps.Size, cfg.PowerUps.Size, tags.ResolvPowerUp)
	obj.Data = powerup

	components.PowerUp.SetValue(powerup, components.PowerUpData{Type: typ})
	components.Object.SetValue(powerup, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	return powerup
}

// RemoveEntity removes an entity and deregisters its collision object.
func RemoveEntity(entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
