package model

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&FoodModel{},
		&EntryModel{},
		&GoalModel{},
	}
}
