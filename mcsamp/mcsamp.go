/*

Mcsamp draws samples from a target distribution using Markov chain
Monte Carlo: a scalar Metropolis random-walk sampler or a Hamiltonian
Monte Carlo sampler.

The basic usage looks like this:

	mcsamp metropolis --target beta --p 15 --q 7 --min 0 --max 1

, this will run a Metropolis chain of the default length targeting
the Beta(15, 7) density.

You can switch to Hamiltonian Monte Carlo:

	mcsamp hmc --dim 2 --eps 0.1 --steps 10 --iter 1000

To see all the options run:

	mcsamp --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/zang-langyan/Markov-Chain-Monte-Carlo-MCMC/checkpoint"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("mcsamp")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("mcsamp", "Markov chain Monte Carlo sampler").Version(version)

	// sampler
	sampler = app.Arg("sampler", "sampling method (metropolis or hmc)").
		Required().Enum("metropolis", "hmc")

	// target distribution
	target = app.Flag("target", "target distribution "+
		"(normal, gamma, beta or uniform; hmc supports normal only)").
		Default("normal").Enum("normal", "gamma", "beta", "uniform")
	mean  = app.Flag("mean", "mean of the normal target").Default("0").Float64()
	sd    = app.Flag("sd", "standard deviation of the normal target").Default("1").Float64()
	shape = app.Flag("shape", "shape of the gamma target").Default("2").Float64()
	scale = app.Flag("scale", "scale of the gamma target").Default("5").Float64()
	pPar  = app.Flag("p", "p parameter of the beta target").Default("15").Float64()
	qPar  = app.Flag("q", "q parameter of the beta target").Default("7").Float64()

	// chain parameters
	iterations = app.Flag("iter", "chain length (metropolis) or number of transitions (hmc)").
			Default("5000").Int()
	burnin    = app.Flag("burnin", "number of leading chain entries to drop").Default("0").Int()
	thetaInit = app.Flag("theta0", "starting value of the chain").Default("0.5").Float64()
	jumpSD    = app.Flag("jumpsd", "standard deviation of the normal jump proposal").Default("0.2").Float64()
	jumpWidth = app.Flag("jumpwidth", "width of the uniform jump proposal (overrides -jumpsd)").Default("0").Float64()
	spaceMin  = app.Flag("min", "lower bound of the parameter space").Default("-inf").Float64()
	spaceMax  = app.Flag("max", "upper bound of the parameter space").Default("+inf").Float64()
	accept    = app.Flag("accept", "report acceptance rate every N iterations").Default("200").Int()

	// hmc parameters
	eps   = app.Flag("eps", "leapfrog step size").Default("0.1").Float64()
	steps = app.Flag("steps", "number of leapfrog steps per trajectory").Default("10").Int()
	dim   = app.Flag("dim", "dimension of the position vector").Default("1").Int()

	// technical
	seed = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()

	// input/output
	outLogF      = app.Flag("log", "write log to a file").String()
	outF         = app.Flag("out", "write the chain trajectory to a file").String()
	plotF        = app.Flag("plot", "write a trace plot to a file (png)").String()
	jsonF        = app.Flag("json", "write json summary to a file").String()
	checkpointF  = app.Flag("checkpoint", "checkpoint database file").String()
	checkpointDT = app.Flag("cpinterval", "checkpoint saving interval (seconds)").Default("30").Float64()
	logLevel     = app.Flag("loglevel", "set loglevel "+
			"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
			Default("notice").
			Enum("critical", "error", "warning", "notice", "info", "debug")
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "mcsamp")
	logging.SetLevel(level, "mcmc")
	logging.SetLevel(level, "checkpoint")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *seed == -1 {
		*seed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *seed)

	var cp *checkpoint.IO
	if *checkpointF != "" {
		db, err := bolt.Open(*checkpointF, 0666, nil)
		if err != nil {
			log.Fatal("Error opening checkpoint file:", err)
		}
		defer db.Close()
		cp = checkpoint.NewIO(db, []byte(*sampler), *checkpointDT)
	}

	startTime := time.Now()

	var summary *RunSummary
	switch *sampler {
	case "metropolis":
		summary, err = runMetropolis(cp)
	case "hmc":
		summary, err = runHMC()
	}
	if err != nil {
		log.Fatal(err)
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)

	summary.Version = version
	summary.CommandLine = os.Args
	summary.Seed = *seed
	summary.Time = deltaT.Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
