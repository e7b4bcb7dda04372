/*
Package pulsesim provides a discrete-event simulator for networks of pulse
modules.

A network is made of three kinds of modules connected by fixed, directed
wires:

	broadcaster -> a, b, c
	%a -> b
	%b -> c
	%c -> inv
	&inv -> a

Broadcasters forward every pulse they receive. Flip-flops (%) ignore high
pulses and toggle on low pulses, emitting their new state. Conjunctions (&)
remember the last pulse received from each of their inputs and emit a low
pulse when all of them are high, a high pulse otherwise.

A button press sends a single low pulse to the broadcaster. Pulses are then
delivered in strict first-in first-out order until no pulse is left in
flight. Module state carries over from one press to the next.

*/
package pulsesim
