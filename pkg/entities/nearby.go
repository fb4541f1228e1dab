package entities

import (
	"cmp"
	"slices"

	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/utils"
)

type nearbyHit struct {
	entity   *Entity
	distance float64
}

// Nearby 查找 pos 周围 distance 以内的存活实体，按距离从近到远排序
// 距离相同时按创建顺序排列
//
// 参数：
//   - exclude: 排除的实体（通常是调用者自己），0 表示不排除
func Nearby(em *ecs.EntityManager, pos utils.Vec2, distance float64, exclude ecs.EntityID) []*Entity {
	var hits []nearbyHit
	for _, id := range ecs.GetEntitiesWith1[*Entity](em) {
		if id == exclude {
			continue
		}
		e, _ := Get(em, id)
		if e.Disposed() {
			continue
		}
		d := pos.DistanceTo(e.Position())
		if d <= distance {
			hits = append(hits, nearbyHit{entity: e, distance: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b nearbyHit) int {
		return cmp.Compare(a.distance, b.distance)
	})

	result := make([]*Entity, len(hits))
	for i, h := range hits {
		result[i] = h.entity
	}
	return result
}
