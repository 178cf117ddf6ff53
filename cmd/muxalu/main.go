// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/muxalu/emulator"
	"github.com/ezrec/muxalu/serial"
)

func main() {
	var compile string
	var ring string
	var save bool
	var input string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".mux stimulus file to compile")
	flag.StringVar(&ring, "r", "", ".ring file for persistent port capture")
	flag.BoolVar(&save, "s", false, "Save serialized stimulus, do not execute")
	flag.StringVar(&input, "i", "-", "Raw serialized stimulus input (when not compiling)")
	flag.StringVar(&output, "o", "-", "Port capture output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := &serial.Program{}

	// Compile a new stimulus stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &serial.Assembler{}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	if save {
		ouf := os.Stdout
		if output != "-" {
			var err error
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
		}

		_, err := ouf.Write(prog.Bytes())
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu := emulator.NewEmulator()
	defer emu.Close()

	emu.Program = prog
	emu.Verbose = verbose

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	// Without a stimulus file to compile, execute a raw serialized
	// sample stream from the tape input.
	if len(compile) == 0 {
		if input == "-" {
			emu.Tape.Input = os.Stdin
		} else {
			inf, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
			emu.Tape.Input = inf
		}

		err := emu.LoadRaw()
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	if len(ring) != 0 {
		emu.Persist = true
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("edges: %v executed: %v power: %v", emu.Ticks, emu.Executed, emu.Power)
	}

	if len(ring) != 0 {
		ouf, err := os.Create(ring)
		if err != nil {
			log.Fatalf("%v: %v", ring, err)
		}
		defer ouf.Close()

		err = emu.Ring.Marshal(ouf)
		if err != nil {
			log.Fatalf("%v: %v", ring, err)
		}
	}
}
