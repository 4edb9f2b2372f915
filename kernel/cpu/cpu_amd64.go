package cpu

// Halt executes a HLT instruction, parking the CPU in a low-power state until
// the next external event. Boot code that cannot continue calls this in a
// loop; nothing re-enables execution so the loop never exits.
func Halt()
