package gamedata

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mageduel/internal/testkit"
)

func TestLoadRoster(t *testing.T) {
	roster, err := LoadRoster()
	if err != nil {
		t.Fatalf("Failed to load roster: %v", err)
	}

	if roster.Player.Title != "Novice Mage" || roster.Player.HP != 20 {
		t.Errorf("Player = %+v, want Novice Mage with 20 HP", roster.Player)
	}

	spell := roster.PlayerSpell()
	if spell == nil {
		t.Fatal("Player spell not found")
	}
	if spell.Name != "Fireball" || spell.MinDamage != 2 || spell.MaxDamage != 6 || spell.Cost != 2 {
		t.Errorf("Spell = %+v, want Fireball 2-6 cost 2", *spell)
	}

	expected := []struct {
		name   string
		hp     int
		attack int
	}{
		{"Goblin", 8, 3},
		{"Troll", 12, 4},
		{"Ogre", 15, 5},
	}
	if len(roster.Enemies) != len(expected) {
		t.Fatalf("Expected %d enemies, got %d", len(expected), len(roster.Enemies))
	}
	for i, want := range expected {
		got := roster.Enemies[i]
		if got.Name != want.name || got.HP != want.hp || got.Attack != want.attack {
			t.Errorf("Enemy %d = %s/%d/%d, want %s/%d/%d",
				i, got.Name, got.HP, got.Attack, want.name, want.hp, want.attack)
		}
	}

	if roster.Boss.Name != "Dark Sorcerer" || roster.Boss.HP != 50 || roster.Boss.Attack != 10 {
		t.Errorf("Boss = %+v, want Dark Sorcerer 50/10", roster.Boss)
	}
	if roster.Boss.OddsOneIn != 10 {
		t.Errorf("Boss odds = 1 in %d, want 1 in 10", roster.Boss.OddsOneIn)
	}
}

func TestRosterValidate(t *testing.T) {
	valid := func() *Roster {
		return &Roster{
			Player:  PlayerDef{Title: "Mage", HP: 10, Spell: "bolt"},
			Spells:  []SpellDef{{ID: "bolt", Name: "Bolt", MinDamage: 1, MaxDamage: 2, Cost: 1}},
			Enemies: []EnemyDef{{ID: "rat", Name: "Rat", HP: 1, Attack: 1, SpawnWeight: 1}},
			Boss:    BossDef{EnemyDef: EnemyDef{ID: "king", Name: "Rat King", HP: 5, Attack: 2}, OddsOneIn: 4},
		}
	}

	tests := []struct {
		name   string
		mutate func(r *Roster)
	}{
		{"zero player hp", func(r *Roster) { r.Player.HP = 0 }},
		{"unknown spell", func(r *Roster) { r.Player.Spell = "nope" }},
		{"inverted spell damage", func(r *Roster) { r.Spells[0].MinDamage = 5 }},
		{"negative cost", func(r *Roster) { r.Spells[0].Cost = -1 }},
		{"no enemies", func(r *Roster) { r.Enemies = nil }},
		{"zero attack", func(r *Roster) { r.Enemies[0].Attack = 0 }},
		{"zero weight", func(r *Roster) { r.Enemies[0].SpawnWeight = 0 }},
		{"zero boss odds", func(r *Roster) { r.Boss.OddsOneIn = 0 }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid roster rejected: %v", err)
	}
	for _, tt := range tests {
		r := valid()
		tt.mutate(r)
		if err := r.Validate(); !errors.Is(err, ErrInvalidRoster) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidRoster", tt.name, err)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry := NewEnemyRegistry(MustLoadRoster().Enemies)

	if registry.Count() != 3 {
		t.Errorf("Expected 3 enemy types, got %d", registry.Count())
	}

	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Error("Goblin not found by ID")
	} else if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID(dragon) should return nil")
	}

	// Equal weights map roll k to the k-th template.
	for roll, want := range []string{"goblin", "troll", "ogre"} {
		got := registry.SpawnRandom(testkit.NewScript(roll))
		if got.ID != want {
			t.Errorf("SpawnRandom(roll %d) = %s, want %s", roll, got.ID, want)
		}
	}

	// Spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a, b := registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestEnemyRegistryEmpty(t *testing.T) {
	if got := NewEnemyRegistry(nil).SpawnRandom(testkit.Min{}); got != nil {
		t.Errorf("SpawnRandom on empty registry = %+v, want nil", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	color, err := ParseHexColor("#102030")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	r, g, b := color.RGB()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("RGB() = %d,%d,%d, want 16,32,48", r, g, b)
	}
}

func TestEnemyDefColor(t *testing.T) {
	def := EnemyDef{Color: "#FF0000"}
	if def.TCellColor() == tcell.ColorDefault {
		t.Error("TCellColor returned default for a valid color")
	}

	bad := EnemyDef{Color: "red"}
	if bad.TCellColor() != tcell.ColorDefault {
		t.Error("TCellColor should fall back to default on bad input")
	}
}
