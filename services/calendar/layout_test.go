package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xscheduler/models"
)

// day is the reference layout day (a Tuesday).
var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.Local)
}

func apt(id string, start time.Time, minutes int) models.Appointment {
	return models.Appointment{
		ID:         id,
		ProviderID: "prov-1",
		Start:      start,
		End:        start.Add(time.Duration(minutes) * time.Minute),
		Status:     models.StatusConfirmed,
	}
}

func blockByID(t *testing.T, blocks []models.LayoutBlock, id string) models.LayoutBlock {
	t.Helper()
	for _, b := range blocks {
		if b.AppointmentID == id {
			return b
		}
	}
	t.Fatalf("no block for appointment %s", id)
	return models.LayoutBlock{}
}

func TestAssignLanes(t *testing.T) {
	t.Run("Empty Day", func(t *testing.T) {
		assert.Empty(t, AssignLanes(nil, day))
	})

	t.Run("Staggered Cluster Of Three", func(t *testing.T) {
		blocks := AssignLanes([]models.Appointment{
			apt("a", at(10, 0), 45),
			apt("b", at(10, 15), 45),
			apt("c", at(10, 30), 60),
		}, day)
		require.Len(t, blocks, 3)

		a := blockByID(t, blocks, "a")
		b := blockByID(t, blocks, "b")
		c := blockByID(t, blocks, "c")
		assert.Equal(t, 0, a.LaneIndex)
		assert.Equal(t, 1, b.LaneIndex)
		assert.Equal(t, 2, c.LaneIndex)
		for _, blk := range blocks {
			assert.Equal(t, 3, blk.LaneCount, "every member of the cluster shares the peak width")
		}
		assert.Equal(t, 600, a.StartOffsetMinutes)
		assert.Equal(t, 45, a.HeightMinutes)
		assert.Equal(t, 60, c.HeightMinutes)
	})

	t.Run("Back To Back Reuses Lane Zero", func(t *testing.T) {
		blocks := AssignLanes([]models.Appointment{
			apt("a", at(9, 0), 60),
			apt("b", at(10, 0), 60),
		}, day)
		require.Len(t, blocks, 2)
		assert.Equal(t, 0, blockByID(t, blocks, "a").LaneIndex)
		assert.Equal(t, 0, blockByID(t, blocks, "b").LaneIndex)
		for _, blk := range blocks {
			assert.Equal(t, 1, blk.LaneCount)
		}
	})

	t.Run("Early Block Revised To Cluster Peak", func(t *testing.T) {
		// a spans the whole morning; b and c overlap it one at a time.
		blocks := AssignLanes([]models.Appointment{
			apt("a", at(9, 0), 180),
			apt("b", at(9, 30), 30),
			apt("c", at(10, 30), 30),
		}, day)

		a := blockByID(t, blocks, "a")
		b := blockByID(t, blocks, "b")
		c := blockByID(t, blocks, "c")
		assert.Equal(t, 0, a.LaneIndex)
		assert.Equal(t, 1, b.LaneIndex)
		assert.Equal(t, 1, c.LaneIndex, "b's lane is free again once b ends")
		assert.Equal(t, 2, a.LaneCount)
		assert.Equal(t, 2, b.LaneCount)
		assert.Equal(t, 2, c.LaneCount)
	})

	t.Run("Equal Starts Ordered By End", func(t *testing.T) {
		blocks := AssignLanes([]models.Appointment{
			apt("long", at(9, 0), 60),
			apt("short", at(9, 0), 30),
		}, day)
		assert.Equal(t, 0, blockByID(t, blocks, "short").LaneIndex)
		assert.Equal(t, 1, blockByID(t, blocks, "long").LaneIndex)
	})

	t.Run("Short Appointment Gets Minimum Height", func(t *testing.T) {
		blocks := AssignLanes([]models.Appointment{apt("tiny", at(10, 0), 5)}, day)
		require.Len(t, blocks, 1)
		assert.Equal(t, minBlockHeightMinutes, blocks[0].HeightMinutes)
	})

	t.Run("No Overlap Within A Lane", func(t *testing.T) {
		input := []models.Appointment{
			apt("a", at(9, 0), 90),
			apt("b", at(9, 30), 30),
			apt("c", at(10, 0), 60),
			apt("d", at(10, 30), 90),
			apt("e", at(11, 0), 30),
		}
		blocks := AssignLanes(input, day)
		for i := 0; i < len(blocks); i++ {
			for j := i + 1; j < len(blocks); j++ {
				if blocks[i].LaneIndex != blocks[j].LaneIndex {
					continue
				}
				iEnd := blocks[i].StartOffsetMinutes + blocks[i].HeightMinutes
				jEnd := blocks[j].StartOffsetMinutes + blocks[j].HeightMinutes
				overlap := blocks[i].StartOffsetMinutes < jEnd && iEnd > blocks[j].StartOffsetMinutes
				assert.False(t, overlap, "blocks %s and %s share lane %d and overlap",
					blocks[i].AppointmentID, blocks[j].AppointmentID, blocks[i].LaneIndex)
			}
		}
	})
}

func TestBuildDayLayout(t *testing.T) {
	mk := func(id, provider string, start time.Time, minutes int) models.Appointment {
		a := apt(id, start, minutes)
		a.ProviderID = provider
		return a
	}

	appts := []models.Appointment{
		mk("a1", "prov-a", at(9, 0), 60),
		mk("a2", "prov-a", at(9, 30), 60),
		mk("b1", "prov-b", at(9, 0), 60),
		mk("c1", "prov-c", at(9, 0), 60),
	}

	t.Run("Columns Per Provider Sorted By ID", func(t *testing.T) {
		layout := BuildDayLayout(day, appts, nil)
		require.Len(t, layout.Columns, 3)
		assert.Equal(t, "prov-a", layout.Columns[0].ProviderID)
		assert.Equal(t, "prov-b", layout.Columns[1].ProviderID)
		assert.Equal(t, "prov-c", layout.Columns[2].ProviderID)
		assert.Equal(t, 4, layout.TotalAppointments)
		assert.Equal(t, "2026-03-10", layout.Date)
	})

	t.Run("Lanes Independent Across Columns", func(t *testing.T) {
		layout := BuildDayLayout(day, appts, nil)
		colA := layout.Columns[0]
		require.Len(t, colA.Blocks, 2)
		assert.Equal(t, 2, colA.Blocks[0].LaneCount)

		colB := layout.Columns[1]
		require.Len(t, colB.Blocks, 1)
		assert.Equal(t, 0, colB.Blocks[0].LaneIndex)
		assert.Equal(t, 1, colB.Blocks[0].LaneCount, "prov-a's overlap must not widen prov-b's column")
	})

	t.Run("Hidden Providers Filtered Before Grouping", func(t *testing.T) {
		layout := BuildDayLayout(day, appts, []string{"prov-a", "prov-b"})
		require.Len(t, layout.Columns, 2)
		assert.Equal(t, 3, layout.TotalAppointments)
		for _, col := range layout.Columns {
			assert.NotEqual(t, "prov-c", col.ProviderID)
		}
	})

	t.Run("Appointments Outside The Day Dropped", func(t *testing.T) {
		other := append(appts, mk("next-day", "prov-a", day.AddDate(0, 0, 1).Add(9*time.Hour), 60))
		layout := BuildDayLayout(day, other, nil)
		assert.Equal(t, 4, layout.TotalAppointments)
	})
}

func TestBuildMonthView(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	t.Run("Grid Geometry", func(t *testing.T) {
		view := BuildMonthView(2026, time.March, nil, nil, MaxChipsPerCell, now)
		require.Len(t, view.Weeks, 6)
		for _, week := range view.Weeks {
			assert.Len(t, week, 7)
		}
		// March 2026 opens on a Sunday, so the grid starts on the 1st.
		assert.Equal(t, "2026-03-01", view.StartDate)
		assert.Equal(t, "2026-04-11", view.EndDate)
		assert.Equal(t, "March 2026", view.MonthLabel)

		assert.True(t, view.Weeks[0][0].IsCurrentMonth)
		lastCell := view.Weeks[5][6]
		assert.False(t, lastCell.IsCurrentMonth)
		assert.Equal(t, 11, lastCell.DayNumber)
	})

	t.Run("Today And Past Flags", func(t *testing.T) {
		view := BuildMonthView(2026, time.March, nil, nil, MaxChipsPerCell, now)
		// 2026-03-15 sits in week 2, Sunday column.
		cell := view.Weeks[2][0]
		require.Equal(t, "2026-03-15", cell.Date)
		assert.True(t, cell.IsToday)
		assert.False(t, cell.IsPast)
		assert.True(t, view.Weeks[1][0].IsPast)
		assert.False(t, view.Weeks[3][0].IsPast)
	})

	t.Run("Chips Capped With Overflow", func(t *testing.T) {
		var appts []models.Appointment
		for i := 0; i < 5; i++ {
			appts = append(appts, apt("apt-"+string(rune('a'+i)), at(9+i, 0), 30))
		}
		view := BuildMonthView(2026, time.March, appts, nil, MaxChipsPerCell, now)

		// All five land on 2026-03-10: week 1, Tuesday column.
		cell := view.Weeks[1][2]
		require.Equal(t, "2026-03-10", cell.Date)
		assert.Len(t, cell.Chips, MaxChipsPerCell)
		assert.Equal(t, 5, cell.AppointmentCount)
		assert.Equal(t, 2, cell.OverflowCount)
		assert.Equal(t, "apt-a", cell.Chips[0].ID, "chips keep earliest-first order")
		assert.Equal(t, 5, view.TotalAppointments)
	})

	t.Run("Provider Filter Applies Before Counting", func(t *testing.T) {
		a := apt("visible", at(9, 0), 30)
		b := apt("hidden", at(10, 0), 30)
		b.ProviderID = "prov-hidden"

		view := BuildMonthView(2026, time.March, []models.Appointment{a, b}, []string{"prov-1"}, MaxChipsPerCell, now)
		cell := view.Weeks[1][2]
		assert.Equal(t, 1, cell.AppointmentCount)
		assert.Equal(t, 0, cell.OverflowCount)
		assert.Equal(t, 1, view.TotalAppointments)
	})
}
