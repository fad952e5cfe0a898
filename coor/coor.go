/*
Coor (Codon Optimization using Ordered Reshuffling) encodes a protein
using the codon usage pattern of a well-expressed reference gene.

Codons of the reference are recorded per amino acid in the order they
appear. The target protein is then encoded by taking these codons in
the same order, starting again from the first codon when an amino acid
occurs more often in the target than in the reference.

The basic usage looks like this:

	coor -r ATGGCCATTGTAATGGGCCGCTGAAAGGGTGCCCGATAG -t MAIVMGR

Reference and target can be read from FASTA files, every target record
is encoded independently:

	coor --reference-file ref.fst --target-file proteins.fst -o out.fst

A codon usage table can be stored in a database and reused:

	coor -r ATGGCC... --save gapdh -t MAIV
	coor --load gapdh -t MAIVMGR

To see all the options run:

	coor -h
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("coor")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("coor", "codon optimization using ordered reshuffling").Version(version)

	// input
	reference     = app.Flag("reference", "reference gene DNA (A/T/G/C, length multiple of 3)").Short('r').String()
	referenceFile = app.Flag("reference-file", "reference gene in FASTA format (first record is used)").ExistingFile()
	target        = app.Flag("target", "target protein (1-letter amino acid code)").Short('t').String()
	targetFile    = app.Flag("target-file", "target proteins in FASTA format").ExistingFile()
	interactive   = app.Flag("interactive", "ask for missing sequences on the standard input").Short('i').Bool()
	gcodeID       = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Envar("COOR_GCODE").Int()

	// codon usage database
	dbFileName = app.Flag("db", "codon usage database file").Default("coor.db").Envar("COOR_DB").String()
	loadName   = app.Flag("load", "use codon usage stored under the name instead of a reference").String()
	saveName   = app.Flag("save", "store codon usage of the reference under the name").String()
	list       = app.Flag("list", "list stored codon usage tables and exit").Bool()
	deleteName = app.Flag("delete", "delete codon usage stored under the name and exit").String()

	// output
	outF     = app.Flag("output", "write optimized DNA in FASTA format to a file").Short('o').String()
	plotF    = app.Flag("plot", "save codon usage chart to a file (png, svg, pdf)").String()
	noTable  = app.Flag("notable", "don't print codon usage table").Bool()
	jsonF    = app.Flag("json", "write json output to a file").String()
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
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
	logging.SetLevel(level, "coor")
	logging.SetLevel(level, "store")

	log.Info(version)
	log.Info("Command line:", os.Args)

	cfg := config{
		Reference:     *reference,
		ReferenceFile: *referenceFile,
		Target:        *target,
		TargetFile:    *targetFile,
		Interactive:   *interactive,
		GCode:         *gcodeID,
		DB:            *dbFileName,
		Load:          *loadName,
		Save:          *saveName,
		List:          *list,
		Delete:        *deleteName,
		Output:        *outF,
		Plot:          *plotF,
		NoTable:       *noTable,
	}

	startTime := time.Now()
	summary, err := run(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if summary == nil {
		return
	}
	summary.Version = version
	summary.CommandLine = os.Args
	summary.Time = time.Since(startTime).Seconds()

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
