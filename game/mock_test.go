package game

// scriptedDice replays a fixed sequence of rolls, attacker first then defender.
type scriptedDice struct {
	rolls []int
	next  int
}

func (d *scriptedDice) Roll() int {
	roll := d.rolls[d.next]
	d.next++
	return roll
}

func newTestWorld() *World {
	w, err := CreateWorld()
	if err != nil {
		panic(err)
	}
	return w
}
