package messages

// Java runtime remediation, one variant per operating system family.
const (
	RemediationDarwin = "Install Java with Homebrew:\n" +
		"  brew install openjdk"

	RemediationLinux = "Install Java with your package manager:\n" +
		"  Ubuntu/Debian: sudo apt install default-jre\n" +
		"  Fedora/RHEL:   sudo dnf install java-17-openjdk"

	RemediationWindows = "Install Java with winget or Chocolatey:\n" +
		"  winget install Microsoft.OpenJDK.17\n" +
		"  choco install openjdk"

	RemediationOther = "Install a Java runtime (17 or newer) from https://adoptium.net"

	PlatformOSRequired = "operating system is required"
)
