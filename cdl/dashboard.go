// This file is part of cc2650emu.
//
// cc2650emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cc2650emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cc2650emu.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package cdl

import (
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/statsview"
	"github.com/rs/cors"
)

// Dashboard serves a live localhost chart of per-cycle PIQ occupancy,
// cache hit-rate and NVIC active-exception count while a long benchmark
// run is in progress. It is only built when the repo is compiled with
// the statsview build tag, since it pulls in an HTTP server that a
// headless test run has no use for.
type Dashboard struct {
	log    *Logger
	viewer *statsview.Viewer
	server *http.Server
}

// NewDashboard wires up a Dashboard that reads from log. It doesn't
// start listening until Start is called.
func NewDashboard(log *Logger) *Dashboard {
	return &Dashboard{
		log:    log,
		viewer: statsview.New(),
	}
}

// Start begins serving two things on addr: the statsview runtime-metrics
// page (goroutines, heap, GC pauses - grounded on the teacher's go.mod
// dependency on statsview itself), and a small CDL-specific line chart
// built directly on go-echarts, at /cdl. It blocks while serving and
// returns once the server stops, e.g. after Stop.
func (d *Dashboard) Start(addr string) error {
	go d.viewer.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/cdl", func(w http.ResponseWriter, r *http.Request) {
		d.render().Render(w)
	})

	d.server = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(mux),
	}
	return d.server.ListenAndServe()
}

// Stop shuts the dashboard's HTTP server down.
func (d *Dashboard) Stop() error {
	if d.server == nil {
		return nil
	}
	return d.server.Close()
}

// render builds a fresh go-echarts line chart from whatever records the
// log currently retains: PIQ occupancy, cache hit rate and NVIC active
// count, one series each, against cycle number.
func (d *Dashboard) render() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cycle Debug Log"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "cycle"}),
	)

	records := d.log.Records()

	cycles := make([]string, len(records))
	piq := make([]opts.LineData, len(records))
	cache := make([]opts.LineData, len(records))
	nvic := make([]opts.LineData, len(records))

	for i, rec := range records {
		cycles[i] = itoa(rec.Cycle)
		piq[i] = opts.LineData{Value: rec.PIQOccupancy}
		nvic[i] = opts.LineData{Value: rec.NVICActive}
		cache[i] = opts.LineData{Value: rec.CacheHitRate}
	}

	line.SetXAxis(cycles).
		AddSeries("piq occupancy", piq).
		AddSeries("cache hit-rate", cache).
		AddSeries("nvic active", nvic)

	return line
}

func itoa(cycle uint64) string {
	if cycle == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for cycle > 0 {
		i--
		buf[i] = byte('0' + cycle%10)
		cycle /= 10
	}
	return string(buf[i:])
}
