package core

// Input tracks key and cursor state from window events.
type Input struct {
	keys           map[Key]bool
	pressed        map[Key]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, pressed: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.keys[e.Key] {
			in.pressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }

// WasPressed reports a key going down since the last call, then forgets it.
func (in *Input) WasPressed(k Key) bool {
	p := in.pressed[k]
	delete(in.pressed, k)
	return p
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
