package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/okian/gaffer/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad_Defaults(t *testing.T) {
	Convey("Given no file and no overriding environment", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.MaxListLimit, ShouldEqual, 500)
			So(cfg.LevelWeight, ShouldEqual, 10)
			So(cfg.LoadPenaltyWeight, ShouldEqual, 20)
			So(cfg.SeedDemoData, ShouldBeFalse)
		})
	})
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GAFFER_ADDR", ":8088")
	t.Setenv("GAFFER_MAX_LIST_LIMIT", "50")
	t.Setenv("GAFFER_LOG_LEVEL", "debug")
	t.Setenv("GAFFER_SEED_DEMO_DATA", "true")

	Convey("Given GAFFER_ environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8088")
			So(cfg.MaxListLimit, ShouldEqual, 50)
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.SeedDemoData, ShouldBeTrue)
		})

		Convey("Then untouched fields keep their defaults", func() {
			So(cfg.LevelWeight, ShouldEqual, 10)
			So(cfg.LoadPenaltyWeight, ShouldEqual, 20)
		})
	})
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gaffer.yaml")
	body := []byte("addr: \":7070\"\nlevel_weight: 12\nload_penalty_weight: 25\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("GAFFER_CONFIG", path)

	Convey("Given a YAML file named by GAFFER_CONFIG", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then file values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LevelWeight, ShouldEqual, 12)
			So(cfg.LoadPenaltyWeight, ShouldEqual, 25)
		})
	})
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gaffer.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("GAFFER_CONFIG", path)
	t.Setenv("GAFFER_ADDR", ":6060")

	Convey("Given both a file and an env override for the same key", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env wins", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
		})
	})
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("GAFFER_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	Convey("Given a missing config file", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with the load sentinel", func() {
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}

func TestLoad_InvalidListLimit(t *testing.T) {
	t.Setenv("GAFFER_MAX_LIST_LIMIT", "0")

	Convey("Given a non-positive list limit", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation rejects it", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}

func TestLoad_InvalidWeight(t *testing.T) {
	t.Setenv("GAFFER_LEVEL_WEIGHT", "-1")

	Convey("Given a non-positive scoring weight", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation rejects it", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
