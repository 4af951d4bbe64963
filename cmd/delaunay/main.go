package main

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/osuushi/delaunay/internal/input"
	"github.com/osuushi/delaunay/internal/logger"
	"github.com/osuushi/delaunay/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Build Voronoi diagrams from sites given on stdin (or in a file). Input
// should be newline separated points in the form "x y", or an SVG document
// with --svg, whose circle centers and polygon vertices become sites.
var (
	app        = kingpin.New("delaunay", "Incremental Delaunay triangulation and Voronoi diagrams.")
	configPath = app.Flag("config", "YAML configuration file.").Short('c').ExistingFile()
	halfExtent = app.Flag("half-extent", "Half extent of the super triangle.").Float64()
	logLevel   = app.Flag("log-level", "Log level (debug, info, warn, error).").String()
	svg        = app.Flag("svg", "Read sites from an SVG document.").Bool()

	dumpCmd    = app.Command("dump", "Print sites, triangles and regions.")
	dumpInput  = inputArg(dumpCmd)
	dumpPretty = dumpCmd.Flag("pretty", "Dump the raw structures.").Bool()

	pngCmd     = app.Command("png", "Render the diagram to a PNG file.")
	pngInput   = inputArg(pngCmd)
	pngOut     = pngCmd.Flag("out", "Output file.").Short('o').Default("voronoi.png").String()
	pngShow    = pngCmd.Flag("show", "Also print the image to the terminal (iTerm only).").Bool()
	pngCircles = pngCmd.Flag("circles", "Draw circumcircles.").Bool()
	pngLabels  = pngCmd.Flag("labels", "Number the sites.").Bool()

	serveCmd  = app.Command("serve", "Serve an interactive page of random diagrams.")
	serveAddr = serveCmd.Flag("addr", "Listen address.").String()

	checkCmd   = app.Command("check", "Validate the triangulation of the input.")
	checkInput = inputArg(checkCmd)
)

func inputArg(cmd *kingpin.CmdClause) *string {
	return cmd.Arg("input", "Sites file. Defaults to stdin.").ExistingFile()
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	app.FatalIfError(err, "")

	level, err := logger.ParseLevel(cfg.Log.Level)
	app.FatalIfError(err, "")
	log := logger.New(level, os.Stderr)
	defer log.Sync()

	if command == serveCmd.FullCommand() {
		serve(cfg, level)
		return
	}

	inputs := map[string]*string{
		dumpCmd.FullCommand():  dumpInput,
		pngCmd.FullCommand():   pngInput,
		checkCmd.FullCommand(): checkInput,
	}
	points, err := readSites(*inputs[command])
	app.FatalIfError(err, "")
	builder, rejected, err := build(points, cfg, log)
	app.FatalIfError(err, "")
	if rejected > 0 {
		fmt.Fprintln(os.Stderr, aurora.Yellow(fmt.Sprintf("%d sites outside the domain were dropped", rejected)))
	}

	switch command {
	case dumpCmd.FullCommand():
		dump(os.Stdout, builder)
	case pngCmd.FullCommand():
		opts := cfg.Render
		opts.Circles = opts.Circles || *pngCircles
		opts.Labels = opts.Labels || *pngLabels
		app.FatalIfError(render.SavePNG(builder.Advanced(), opts, *pngOut), "rendering")
		if *pngShow {
			imgcat.CatFile(*pngOut, os.Stdout)
		}
	case checkCmd.FullCommand():
		if !check(os.Stdout, builder) {
			os.Exit(1)
		}
	}
}

// Configuration file values, overridden by flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}
	if *halfExtent != 0 {
		cfg.Domain.HalfExtent = *halfExtent
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *serveAddr != "" {
		cfg.Serve.Addr = *serveAddr
	}
	return cfg, cfg.Validate()
}

func readSites(path string) ([]advanced.Point, error) {
	in := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	if *svg {
		return input.ReadSVG(in)
	}
	return input.ReadText(in)
}

// Add every site, dropping (and counting) the ones outside the domain.
func build(points []advanced.Point, cfg config.Config, log *logger.ZapLogger) (*delaunay.Builder, int, error) {
	builder, err := delaunay.NewBuilder(cfg.Domain.HalfExtent, delaunay.WithLogger(log))
	if err != nil {
		return nil, 0, err
	}
	rejected := 0
	for _, p := range points {
		err := builder.AddPoint(p.X(), p.Y())
		if errors.Is(err, delaunay.ErrOutsideDomain) {
			rejected++
			continue
		}
		if err != nil {
			return nil, rejected, err
		}
	}
	log.Info("built diagram", zap.Int("sites", len(builder.Sites())), zap.Int("rejected", rejected))
	return builder, rejected, nil
}

func dump(w io.Writer, builder *delaunay.Builder) {
	if *dumpPretty {
		fmt.Fprintln(w, dbg.Dump(builder.Sites()))
		fmt.Fprintln(w, dbg.Dump(builder.Triangles()))
		return
	}
	fmt.Fprintln(w, aurora.Bold("Sites"))
	for i, site := range builder.Sites() {
		fmt.Fprintf(w, "%4d %v\n", i, aurora.Green(site))
	}
	fmt.Fprintln(w, aurora.Bold("Triangles"))
	for _, tri := range builder.Triangles() {
		if tri.Synthetic {
			continue
		}
		fmt.Fprintf(w, "     %v %v %v\n", aurora.Cyan(tri.A), aurora.Cyan(tri.B), aurora.Cyan(tri.C))
	}
	regions, err := builder.Regions()
	if err != nil {
		fmt.Fprintln(w, aurora.Red(err))
		return
	}
	fmt.Fprintln(w, aurora.Bold("Regions"))
	for _, region := range regions {
		fmt.Fprintf(w, "     %v:", aurora.Green(region.Site))
		for _, v := range region.Vertices {
			fmt.Fprintf(w, " %v", v)
		}
		fmt.Fprintln(w)
	}
}

func check(w io.Writer, builder *delaunay.Builder) bool {
	b := builder.Advanced()
	sites := append(b.Sites(), b.Corners()...)
	violations := advanced.Validate(b.Triangulation(), sites)
	stats := b.Triangulation().Stats()
	fmt.Fprintf(w, "%d sites, %d simplices, %d linear scans, %d duplicates\n",
		len(b.Sites()), b.Triangulation().Size(), stats.LinearScans, stats.Duplicates)
	for _, v := range violations {
		fmt.Fprintln(w, aurora.Red(v.String()))
	}
	if len(violations) == 0 {
		fmt.Fprintln(w, aurora.Green("ok"))
	}
	return len(violations) == 0
}

// Page parameters from a form submission, or fresh ones for a plain GET.
func parseParams(r *http.Request, cfg config.Config) (pageParams, error) {
	params := pageParams{
		Sites:      cfg.Serve.Sites,
		MaxSites:   cfg.Serve.MaxSites,
		Seed:       rand.Int63n(1 << 31),
		HalfExtent: cfg.Domain.HalfExtent,
	}
	if r.Method != http.MethodPost {
		return params, nil
	}
	if err := r.ParseForm(); err != nil {
		return params, errors.Wrap(err, "parsing form")
	}
	if value := r.FormValue("sites"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return params, errors.Wrap(err, "sites")
		}
		if n < 0 || n > cfg.Serve.MaxSites {
			return params, errors.Errorf("sites must be between 0 and %d, got %d", cfg.Serve.MaxSites, n)
		}
		params.Sites = n
	}
	if seed, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		params.Seed = seed
	}
	return params, nil
}

// Each request builds a diagram from random sites and shows it next to the
// log of its construction.
func serve(cfg config.Config, level zapcore.Level) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		params, err := parseParams(r, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log := logger.New(level, nil)
		defer log.ClearLogs()

		rng := rand.New(rand.NewSource(params.Seed))
		points := make([]advanced.Point, params.Sites)
		for i := range points {
			points[i] = advanced.Pt(rng.Float64()*1000, rng.Float64()*1000)
		}
		builder, rejected, err := build(points, cfg, log)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		params.Rejected = rejected

		if err := pageHead.Execute(w, params); err != nil {
			log.Error("rendering page", zap.Error(err))
			return
		}
		chart := render.Chart(builder.Advanced(), "Voronoi diagram", cfg.Render.Delaunay)
		if err := chart.Render(w); err != nil {
			log.Error("rendering chart", zap.Error(err))
		}
		fmt.Fprintln(w, pageMiddle)
		log.UpdateLogs()
		for _, l := range log.Logs {
			fmt.Fprintln(w, l)
		}
		fmt.Fprint(w, pageTail+"\n")
	})

	fmt.Fprintln(os.Stderr, "Listening on", cfg.Serve.Addr)
	app.FatalIfError(http.ListenAndServe(cfg.Serve.Addr, nil), "serving")
}
