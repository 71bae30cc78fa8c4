package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ecs "github.com/iauns/cpm-entity-system"
)

type cmPosition struct{ X, Y float64 }
type cmVelocity struct{ X, Y float64 }

func TestContainerMapAddAndGetComponent(t *testing.T) {
	cm := ecs.NewContainerMap()

	ecs.AddComponent(cm, 1, cmPosition{X: 1, Y: 2})
	cm.Renormalize(false)

	got, ok := ecs.GetComponent[cmPosition](cm, 1)
	assert.True(t, ok)
	assert.Equal(t, cmPosition{X: 1, Y: 2}, *got)
}

func TestContainerMapGetComponentMissingType(t *testing.T) {
	cm := ecs.NewContainerMap()
	_, ok := ecs.GetComponent[cmPosition](cm, 1)
	assert.False(t, ok, "expected miss when no container for the type was ever created")
}

func TestContainerMapAddContainerRejectsDuplicate(t *testing.T) {
	cm := ecs.NewContainerMap()
	id := ecs.TypeIDOf[cmPosition]()

	first := ecs.NewComponentContainer[cmPosition]()
	second := ecs.NewComponentContainer[cmPosition]()

	assert.True(t, cm.AddContainer(id, first))
	assert.False(t, cm.AddContainer(id, second), "second registration under the same id should be rejected")
}

func TestContainerMapRemoveEntityClearsEveryContainer(t *testing.T) {
	cm := ecs.NewContainerMap()
	ecs.AddComponent(cm, 7, cmPosition{X: 1})
	ecs.AddComponent(cm, 7, cmVelocity{X: 2})
	cm.Renormalize(false)

	cm.RemoveEntity(7)
	cm.Renormalize(false)

	_, okPos := ecs.GetComponent[cmPosition](cm, 7)
	_, okVel := ecs.GetComponent[cmVelocity](cm, 7)
	assert.False(t, okPos)
	assert.False(t, okVel)
}

func TestContainerMapStaticComponents(t *testing.T) {
	cm := ecs.NewContainerMap()
	ecs.AddStaticComponent(cm, cmPosition{X: 1})
	ecs.AddStaticComponent(cm, cmPosition{X: 2})
	cm.Renormalize(false)

	group := ecs.StaticComponents[cmPosition](cm)
	assert.Equal(t, 2, group.Len())
}
