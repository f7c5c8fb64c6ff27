package main

import "github.com/0xb10ckdev/Aera-Vault-V2/cmd"

func main() {
	cmd.Execute()
}
