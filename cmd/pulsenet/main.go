// Command pulsenet simulates pulse networks and prints puzzle answers.
package main

func main() {
	Execute()
}
