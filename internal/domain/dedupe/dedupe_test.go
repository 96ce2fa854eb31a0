package dedupe_test

import (
	"context"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/staffsight/staffsight/internal/domain/dedupe"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new in-memory deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a fresh ID", func() {
			seen := d.SeenAndRecord(ctx, "EMP0001")

			Convey("Then it is not a duplicate", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording the same ID twice", func() {
			So(d.SeenAndRecord(ctx, "EMP0001"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "EMP0001"), ShouldBeTrue)
			So(d.Size(), ShouldEqual, 1)
		})

		Convey("When recording distinct IDs", func() {
			So(d.SeenAndRecord(ctx, "EMP0001"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "EMP0002"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})

		Convey("When many goroutines record the same ID", func() {
			const workers = 32
			var wg sync.WaitGroup
			duplicates := make(chan bool, workers)

			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					duplicates <- d.SeenAndRecord(ctx, "EMP0099")
				}()
			}
			wg.Wait()
			close(duplicates)

			fresh := 0
			for dup := range duplicates {
				if !dup {
					fresh++
				}
			}

			Convey("Then exactly one recording wins", func() {
				So(fresh, ShouldEqual, 1)
				So(d.Size(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a deduper sized for a batch", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithInitialCapacity(1000))

		Convey("When used immediately", func() {
			So(d.Size(), ShouldEqual, 0)
			So(d.SeenAndRecord(context.Background(), "EMP0001"), ShouldBeFalse)
		})
	})
}
