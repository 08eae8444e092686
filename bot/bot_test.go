package bot_test

import (
	"math/rand/v2"
	"testing"

	"github.com/lab1702/seabots/bot"
	"github.com/lab1702/seabots/bot/mocks"
	"github.com/lab1702/seabots/game"
	"go.uber.org/mock/gomock"
)

// expectBoat sets up a contact mock for a live boat owned by player.
func expectBoat(c *mocks.MockContact, id game.EntityID, player game.PlayerID, t game.EntityType, pos game.Vec2) {
	data := t.Data()
	c.EXPECT().ID().Return(id).AnyTimes()
	c.EXPECT().PlayerID().Return(player, true).AnyTimes()
	c.EXPECT().EntityType().Return(t, true).AnyTimes()
	c.EXPECT().Transform().Return(game.Transform{Position: pos}).AnyTimes()
	c.EXPECT().Altitude().Return(game.AltitudeZero).AnyTimes()
	c.EXPECT().Damage().Return(game.Ticks(0)).AnyTimes()
	c.EXPECT().Reloads().Return(make([]game.Ticks, len(data.Armaments))).AnyTimes()
	c.EXPECT().TurretAngles().Return(make([]game.Angle, len(data.Turrets))).AnyTimes()
}

func TestUpdateSpawnDoesNotTouchTerrain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshot := mocks.NewMockSnapshot(ctrl)
	snapshot.EXPECT().PlayerID().Return(game.PlayerID(7)).AnyTimes()
	snapshot.EXPECT().Contacts().Return(nil)

	b := bot.NewSeeded(1)
	cmds, quit := b.Update(snapshot)
	if quit || len(cmds) != 1 {
		t.Fatalf("Update = (%v, %v), expected one spawn", cmds, quit)
	}
	if _, ok := cmds[0].(game.Spawn); !ok {
		t.Errorf("command is %T, expected game.Spawn", cmds[0])
	}
}

func TestUpdateSamplesTerrainRing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	self := mocks.NewMockContact(ctrl)
	expectBoat(self, 1, 7, game.EntityTypeFairmile, game.Vec2{X: 500, Y: 500})
	length := game.EntityTypeFairmile.Data().Length

	terrain := mocks.NewMockTerrain(ctrl)
	terrain.EXPECT().Sample(gomock.Any()).DoAndReturn(func(pos game.Vec2) (game.Altitude, bool) {
		if d := pos.Distance(game.Vec2{X: 500, Y: 500}); d < length-0.01 || d > length+0.01 {
			t.Errorf("sampled %v at distance %f, expected %f", pos, d, length)
		}
		// Land to the north.
		if pos.Y > 501 {
			return game.AltitudeMax, true
		}
		return 0, false
	}).Times(bot.TerrainSamples)

	snapshot := mocks.NewMockSnapshot(ctrl)
	snapshot.EXPECT().PlayerID().Return(game.PlayerID(7)).AnyTimes()
	snapshot.EXPECT().Contacts().Return([]bot.Contact{self})
	snapshot.EXPECT().Terrain().Return(terrain)
	snapshot.EXPECT().WorldRadius().Return(float32(1e5))
	snapshot.EXPECT().Score().Return(uint32(0)).AnyTimes()

	b := bot.NewWithPersonality(rand.New(rand.NewPCG(1, 1)), 0, game.Vec2{}, 1)
	cmds, quit := b.Update(snapshot)
	if quit {
		t.Fatal("alive bot quit")
	}

	control, ok := cmds[0].(game.Control)
	if !ok {
		t.Fatalf("first command is %T, expected game.Control", cmds[0])
	}
	if dir := control.Guidance.DirectionTarget.Degrees(); dir > -45 || dir < -135 {
		t.Errorf("direction = %f°, expected away from land to the north", dir)
	}
	if b.State() != bot.StateAlive {
		t.Errorf("state = %s, expected alive", b.State())
	}
}

func TestUpdateSkipsUnknownContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	self := mocks.NewMockContact(ctrl)
	expectBoat(self, 1, 7, game.EntityTypeFairmile, game.Vec2{})

	unknown := mocks.NewMockContact(ctrl)
	unknown.EXPECT().ID().Return(game.EntityID(2)).AnyTimes()
	unknown.EXPECT().EntityType().Return(game.EntityTypeInvalid, false).AnyTimes()

	snapshot := mocks.NewMockSnapshot(ctrl)
	snapshot.EXPECT().PlayerID().Return(game.PlayerID(7)).AnyTimes()
	snapshot.EXPECT().Contacts().Return([]bot.Contact{self, unknown})
	snapshot.EXPECT().Terrain().Return(game.FlatTerrain{})
	snapshot.EXPECT().WorldRadius().Return(float32(1e5))
	snapshot.EXPECT().Score().Return(uint32(0)).AnyTimes()

	b := bot.NewWithPersonality(rand.New(rand.NewPCG(1, 1)), 1, game.Vec2{}, 1)
	cmds, _ := b.Update(snapshot)
	if len(cmds) != 1 {
		t.Fatalf("commands = %v, expected only control", cmds)
	}
	if control := cmds[0].(game.Control); control.AimTarget != nil {
		t.Errorf("aimed at unknown contact: %v", *control.AimTarget)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state bot.State
		want  string
	}{
		{bot.StateNeverSpawned, "never_spawned"},
		{bot.StateAlive, "alive"},
		{bot.StateDead, "dead"},
		{bot.StateQuit, "quit"},
		{bot.State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.want)
		}
	}
}
