package wheelist_test

import (
	"slices"
	"testing"

	"github.com/djdv/go-wheelist"
)

// Fuzz structural edits against a slice model.
// Each pair of bytes is an opcode and an argument.
func FuzzList_Operations(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 1, 0, 2, 1, 3, 0})
	f.Add([]byte{0, 1, 0, 2, 0, 3, 4, 3, 4, 1, 5, 2})
	f.Add([]byte{1, 9, 3, 0, 3, 0, 3, 0})

	f.Fuzz(func(t *testing.T, program []byte) {
		const limit = 1 << 10
		if len(program) > limit {
			program = program[:limit]
		}
		wheel, err := wheelist.NewWheel(recordID, wheelist.Options{})
		if err != nil {
			t.Fatal(err)
		}
		var (
			model  []int
			nextID int
		)
		for pc := 0; pc+1 < len(program); pc += 2 {
			arg := int(program[pc+1])
			switch program[pc] % 6 {
			case 0: // Add tail.
				wheel.Add(record{id: nextID}, wheelist.AtTail)
				model = append(model, nextID)
				nextID++
			case 1: // Add head.
				wheel.Add(record{id: nextID}, wheelist.AtHead)
				model = slices.Insert(model, 0, nextID)
				nextID++
			case 2: // Insert.
				index := arg % (len(model) + 2)
				_, err := wheel.Insert(index, record{id: nextID})
				if index > len(model) {
					if err == nil {
						t.Fatalf("Insert(%d) past %d must fail", index, len(model))
					}
					break
				}
				if err != nil {
					t.Fatal(err)
				}
				model = slices.Insert(model, index, nextID)
				nextID++
			case 3: // Delete.
				index := arg % (len(model) + 1)
				err := wheel.Delete(index)
				if index >= len(model) {
					if err == nil {
						t.Fatalf("Delete(%d) of %d must fail", index, len(model))
					}
					break
				}
				if err != nil {
					t.Fatal(err)
				}
				model = slices.Delete(model, index, index+1)
			case 4: // Move.
				if len(model) == 0 {
					wheel.Move(0, 0)
					break
				}
				from, to := arg%len(model), (arg/7)%len(model)
				wheel.Move(from, to)
				if from != to {
					id := model[from]
					model = slices.Delete(model, from, from+1)
					model = slices.Insert(model, to, id)
				}
			case 5: // Lookup.
				if len(model) == 0 {
					break
				}
				id := model[arg%len(model)]
				if got := wheel.IndexOf(wheel.Key(id)); got != slices.Index(model, id) {
					t.Fatalf("IndexOf(%d): got %d want %d", id, got, slices.Index(model, id))
				}
			}
			if got := slices.Collect(wheel.Keys()); !slices.Equal(got, model) {
				t.Fatalf("after op %d"+
					"\n\tgot: %v"+
					"\n\twant: %v",
					program[pc]%6, got, model)
			}
			checkRing(t, wheel.List)
			if (wheel.CurrentNode() == nil) != (len(model) == 0) {
				t.Fatal("cursor must be set exactly when the wheel is non-empty")
			}
		}
	})
}
