// Command shiro51 loads an MCS-51 program image and runs it to
// completion (or until it halts on an unknown/unimplemented opcode).
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/shirosaka/shiro51/cpu"
	"github.com/shirosaka/shiro51/disassemble"
)

var (
	file        = flag.String("file", "", "Path to the hex-format program image to load")
	enableDebug = flag.Bool("enable-debug", false, "If true, logs a disassembled trace of every instruction executed")
	noGUI       = flag.Bool("no-gui", false, "Accepted for compatibility with the original CLI; this build has no GUI regardless")
	debugPort   = flag.Int("debug-port", 0, "If nonzero, serves net/http/pprof on this port")
)

func main() {
	flag.Parse()

	if *file == "" {
		log.Fatal("shiro51: -file is required")
	}
	if *noGUI {
		log.Print("shiro51: -no-gui has no effect; this build never had a GUI")
	}
	if *debugPort != 0 {
		go func() {
			log.Printf("shiro51: pprof listening on :%d", *debugPort)
			log.Println(http.ListenAndServe(fmt.Sprintf(":%d", *debugPort), nil))
		}()
	}

	c := cpu.New()
	if err := c.Init(*file); err != nil {
		log.Fatalf("shiro51: Init: %v", err)
	}

	for !c.Halted() {
		if *enableDebug {
			text, _ := disassemble.Step(c.PC, &c.Mem)
			log.Printf("%#04x: %s", c.PC, text)
		}
		if err := c.Cycle(); err != nil {
			log.Fatalf("shiro51: Cycle: %v", err)
		}
	}
	log.Print("shiro51: CPU halted")
}
