/*
Package oft implements the policy layer of an omnichain fungible token (OFT)
transfer program. It governs which principals and transfer identifiers are
exempt from the global transfer rate limiter, and how transfer amounts are
converted between the token's local decimal precision and the coarser shared
decimal precision used across network boundaries.

Override lists are bounded and mutated only in all-or-nothing batches signed
by the store administrator. Amount conversion never silently transfers dust
and fails closed on overflow.
*/
package oft
