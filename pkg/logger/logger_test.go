package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/gaffer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGetBeforeInit(t *testing.T) {
	Convey("Given the global logger was never initialized", t, func() {
		So(func() { logger.Get() }, ShouldPanic)
	})
}

func TestInitAndGet(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "hello", logger.String("k", "v"))
			}, ShouldNotPanic)
		})

		Convey("Then Named derives a scoped logger", func() {
			named := logger.Named("roster")
			So(named, ShouldNotBeNil)
			So(func() {
				named.Debug(context.Background(), "scoped entry")
			}, ShouldNotPanic)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels parse case-insensitively", func() {
			for _, level := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				So(logger.SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("Then unknown levels are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		err := errors.New("boom")

		Convey("Then each carries its key and value", func() {
			So(logger.String("s", "v"), ShouldResemble, logger.Field{Key: "s", Value: "v"})
			So(logger.Int("n", 7), ShouldResemble, logger.Field{Key: "n", Value: 7})
			So(logger.Float64("f", 1.5), ShouldResemble, logger.Field{Key: "f", Value: 1.5})
			So(logger.Bool("b", true), ShouldResemble, logger.Field{Key: "b", Value: true})
			So(logger.Duration("d", 2*time.Second), ShouldResemble, logger.Field{Key: "d", Value: "2s"})
			So(logger.Any("a", []int{1}), ShouldResemble, logger.Field{Key: "a", Value: []int{1}})
			So(logger.Error(err), ShouldResemble, logger.Field{Key: "error", Value: err})
		})
	})
}
