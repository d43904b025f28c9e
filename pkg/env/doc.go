package env

/*
Package env captures and compares environment snapshots.

It handles:
  - Parsing `set` style KEY=VALUE dumps into an ordered Mapping
  - Splitting a two-phase dump at a sentinel line
  - Computing the delta a toolchain script applied to the environment
  - Replaying a delta on top of a base environment
  - Exporting a mapping in dotenv format

Basic Usage:

    before, after := env.Split(output, "--------")
    delta := env.Diff(before, after)

    delta.Each(func(key, value string) {
        fmt.Printf("%s=%s\n", key, value) // PATH=C:\VC\bin;%PATH%
    })

    // Rebuild the full environment for a child process
    full := env.Apply(env.FromEnviron(os.Environ()), delta)
    cmd.Env = full.Environ()

Self References:

A changed value that still contains its previous value has every occurrence
of the old value replaced by %KEY%. Applying the delta substitutes the base
value back, so path-like variables are stored once instead of twice.
*/
