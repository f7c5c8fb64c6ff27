package version

// Set at build time:
//
//	go build -ldflags "-X github.com/0xb10ckdev/Aera-Vault-V2/internal/version.Version=v1.0.0 -X github.com/0xb10ckdev/Aera-Vault-V2/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Version = "unknown"
	Commit  = "unknown"
)

func GetVersion() string {
	return Version
}

func GetCommit() string {
	return Commit
}
