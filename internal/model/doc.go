// Package model assembles symbolic right-hand sides of first-order ODE
// systems, and the matching conserved-quantity expressions, for a fixed
// catalogue of classical-mechanics systems:
//
//   - [Mascon]: test particle in a field of fixed point masses, optionally
//     observed in a uniformly rotating frame
//   - [Rotating]: pure rotating-frame pseudo-forces (Coriolis + centrifugal)
//   - [FixedCentres]: test particle around fixed gravitating centres in an
//     inertial frame
//   - [NBody], [NP1Body]: mutual-gravity systems of n bodies, in inertial
//     and primary-relative formulations
//   - [Pendulum]: the simple pendulum
//
// Each dynamics builder returns a [System]: an ordered list of
// (state variable, derivative expression) pairs following the fixed naming
// convention x, y, z, vx, vy, vz (suffixed _i per body for the n-body
// models). The *Potential and *Energy companions return a single scalar
// expression composed from the same primitive building blocks.
//
// Builders are pure functions: they validate their array-valued inputs
// eagerly (see [ShapeError] and [ConversionError]), then compose expression
// primitives. No state is shared between invocations and nothing is cached.
package model
