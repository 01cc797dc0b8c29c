package controllers

import "loginadvance/models"

type StateMachine struct {
	current models.Screen
	onEnter map[models.ScreenKind]func(models.Screen)
	onExit  map[models.ScreenKind]func()
}

func NewStateMachine(initial models.Screen) *StateMachine {
	return &StateMachine{
		current: initial,
		onEnter: make(map[models.ScreenKind]func(models.Screen)),
		onExit:  make(map[models.ScreenKind]func()),
	}
}

func (sm *StateMachine) OnEnter(kind models.ScreenKind, fn func(models.Screen)) {
	sm.onEnter[kind] = fn
}

func (sm *StateMachine) OnExit(kind models.ScreenKind, fn func()) {
	sm.onExit[kind] = fn
}

// Transition moves to the given screen. Screens are compared by value, so
// Success("a") to Success("b") still fires the hooks.
func (sm *StateMachine) Transition(to models.Screen) {
	if sm.current == to {
		return
	}
	// Call OnExit for the current screen if registered
	if fn, ok := sm.onExit[sm.current.Kind]; ok {
		fn()
	}
	sm.current = to
	if fn, ok := sm.onEnter[to.Kind]; ok {
		fn(to)
	}
}

func (sm *StateMachine) Current() models.Screen {
	return sm.current
}
